// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package typeclass provides a concept-dispatch engine: operations such as
// [Equal], [Transform] or [FindIf] resolve to an implementation from the
// tags of their operands.
//
// Every value has exactly one [Tag]. A Go type is its own tag unless it
// implements [Tagged] or is adapted from a foreign representation with
// [Adapt]. Family tags group related representations: every [Optional]
// shares the Optional tag, and constant families such as
// IntegralConstant[int32] are parametrized by the type of the value they
// carry.
//
// # Design Philosophy
//
// typeclass provides:
//   - Concepts with explicit minimal complete definitions, validated when
//     the concept is defined
//   - Registration first, resolution after: the first resolution seals the
//     registry, so an (operation, tags) pair always resolves to the same slot
//   - Hard failures for every defect, with a single escape hatch ([Sfinae])
//     that turns "no candidate applies" into [Nothing]
//
// # Concepts and Operations
//
// An [Operation] dispatches on its first operand ([ByFirst]), on its first
// two operands ([ByPair]) or on an explicit tag ([ByTag]). A [Concept]
// groups operations and lists their minimal complete definitions:
//
//   - [DefineConcept]: Define a concept and validate its default graph
//   - [MinimalComplete]: Add a minimal complete definition
//   - [Refines]: Require modeling other concepts first
//   - [DefaultVia]: Derive an operation from others of the same concept
//
// A tag models a concept when every refined concept is modeled and some
// minimal complete definition is implemented for it. Defaults never count:
//
//   - [Registry.Models]: Concept membership
//   - [Registry.MustModel]: Concept check, disabled by [WithConceptChecks]
//   - [Registry.IsDefault]: Whether an operation falls back to a default
//
// # Resolution
//
// [Registry.Resolve] tries, in order: the exact override registered with
// [Registry.Register]; conditional slots registered with
// [Registry.RegisterWhen]; lifting of heterogeneous operands into their
// common tag; the first viable default. A call nothing applies to fails
// with [ErrNoImplementation], naming the operations to implement.
//
//   - [Registry.Invoke]: Dispatch and run
//   - [Registry.InvokeTag]: Dispatch a ByTag operation
//   - [Registry.TryInvoke]: Return resolution failures as errors
//
// # Common Types and Embeddings
//
//   - [Registry.Common]: Common tag of two tags, commutative
//   - [Registry.RegisterCommon]: Explicit edge, stored in both orders
//   - [Registry.IsEmbedded]: Lossless conversion check
//   - [Registry.HasCommonEmbedding]: Common tag modeling a concept
//
// Two constants of different families collapse into [CanonicalConstant]
// over the common value type. Predeclared numeric types follow the usual
// arithmetic conversions; an integer embeds into a float only when its
// magnitude fits the mantissa.
//
// # Conversions
//
//   - [Registry.Convert]: Explicit or embedding conversion
//   - [ConvertTo]: Typed conversion on the Default registry
//   - [Registry.RegisterConversion]: Register a conversion with its kind
//
// The value operation of a constant is its conversion to the value type.
//
// # Prelude
//
// [NewRegistry] installs the prelude unless [WithoutPrelude] is given:
// Comparable, Orderable, Constant, Functor, Applicative, Monad, MonadPlus,
// Foldable, Searchable, Monoid, Group, Ring, IntegralDomain and Product,
// with models for predeclared types, constants, [Optional], [Pair],
// [Tuple], [Map] and *big.Rat. The package-level functions use [Default].
//
// # Errors
//
// Hard failures panic with a [*DispatchError] wrapping one of the Err*
// sentinels. Try* variants return the same error.
package typeclass
