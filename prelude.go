// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// The prelude concepts are defined in dependency order: a concept is
// defined after the concepts it refines. Operations whose defaults name
// each other are declared as package variables and receive their defaults
// here.
func init() {
	defineComparable()
	defineOrderable()
	defineConstant()
	defineFunctor()
	defineMonad()
	defineFoldable()
	defineSearchable()
	defineArithmetic()
	defineProduct()

	Default = NewRegistry(envOptions()...)
}

// installPrelude registers the built-in models and containers.
func installPrelude(r *Registry) {
	registerComparableBuiltins(r)
	registerOrderableBuiltins(r)
	registerArithmeticBuiltins(r)
	registerConstants(r)
	registerOptional(r)
	registerPair(r)
	registerTuple(r)
	registerMap(r)
	registerRatio(r)
}
