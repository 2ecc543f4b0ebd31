// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Manifest describes the contents of a registry. Entries are sorted, so
// the same registrations always produce the same manifest.
type Manifest struct {
	Concepts    []ConceptInfo    `yaml:"concepts"`
	Slots       []SlotInfo       `yaml:"slots"`
	Common      []CommonInfo     `yaml:"common,omitempty"`
	Conversions []ConversionInfo `yaml:"conversions,omitempty"`
	Adapters    []AdapterInfo    `yaml:"adapters,omitempty"`
	Rules       []RuleInfo       `yaml:"rules,omitempty"`
}

// ConceptInfo describes a concept with registered slots.
type ConceptInfo struct {
	Name       string     `yaml:"name"`
	Operations []string   `yaml:"operations"`
	Minimal    [][]string `yaml:"minimal,flow"`
	Refines    []string   `yaml:"refines,omitempty"`
}

// SlotInfo describes an override or a conditional slot.
type SlotInfo struct {
	Op   string   `yaml:"op"`
	Kind string   `yaml:"kind"`
	Tags []string `yaml:"tags,omitempty,flow"`
	When string   `yaml:"when,omitempty"`
}

// CommonInfo describes an explicit common-type edge.
type CommonInfo struct {
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Common string `yaml:"common"`
}

// ConversionInfo describes a registered conversion.
type ConversionInfo struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Kind string `yaml:"kind"`
}

// AdapterInfo describes a foreign type adapted to a tag.
type AdapterInfo struct {
	Type string `yaml:"type"`
	Tag  string `yaml:"tag"`
}

// RuleInfo names a common-type or conversion rule.
type RuleInfo struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
}

// Manifest returns a description of the registrations of r.
// It does not seal r.
func (r *Registry) Manifest() Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var m Manifest
	for c := range r.concepts {
		info := ConceptInfo{Name: c.name, Operations: opNames(c.ops), Minimal: c.missing()}
		if len(c.refines) > 0 {
			info.Refines = lo.Map(c.refines, func(p *Concept, _ int) string { return p.name })
		}
		m.Concepts = append(m.Concepts, info)
	}
	slices.SortFunc(m.Concepts, func(a, b ConceptInfo) int { return cmp.Compare(a.Name, b.Name) })

	for k, s := range r.exact {
		tags := []Tag{k.a}
		if k.op.by == ByPair {
			tags = append(tags, k.b)
		}
		m.Slots = append(m.Slots, SlotInfo{Op: k.op.String(), Kind: s.kind.String(), Tags: tagStrings(tags)})
	}
	for op, cs := range r.cond {
		for _, c := range cs {
			m.Slots = append(m.Slots, SlotInfo{Op: op.String(), Kind: c.slot.kind.String(), When: c.name})
		}
	}
	slices.SortFunc(m.Slots, func(a, b SlotInfo) int {
		return cmp.Or(
			cmp.Compare(a.Op, b.Op),
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(strings.Join(a.Tags, ","), strings.Join(b.Tags, ",")),
			cmp.Compare(a.When, b.When),
		)
	})

	// edges are stored in both orders
	seen := make(map[tagPair]bool, len(r.edges)/2)
	for k, c := range r.edges {
		if seen[k] {
			continue
		}
		seen[k], seen[tagPair{k[1], k[0]}] = true, true
		a, b := k[0].String(), k[1].String()
		if a > b {
			a, b = b, a
		}
		m.Common = append(m.Common, CommonInfo{A: a, B: b, Common: c.String()})
	}
	slices.SortFunc(m.Common, func(x, y CommonInfo) int {
		return cmp.Or(cmp.Compare(x.A, y.A), cmp.Compare(x.B, y.B), cmp.Compare(x.Common, y.Common))
	})

	for k, c := range r.conversions {
		m.Conversions = append(m.Conversions, ConversionInfo{From: k[0].String(), To: k[1].String(), Kind: c.kind.String()})
	}
	slices.SortFunc(m.Conversions, func(x, y ConversionInfo) int {
		return cmp.Or(cmp.Compare(x.From, y.From), cmp.Compare(x.To, y.To))
	})

	for rt, t := range r.adapters {
		m.Adapters = append(m.Adapters, AdapterInfo{Type: rt.String(), Tag: t.String()})
	}
	slices.SortFunc(m.Adapters, func(x, y AdapterInfo) int { return cmp.Compare(x.Type, y.Type) })

	for _, cr := range r.commonRules {
		m.Rules = append(m.Rules, RuleInfo{Kind: "common", Name: cr.name})
	}
	for _, cr := range r.convRules {
		m.Rules = append(m.Rules, RuleInfo{Kind: "conversion", Name: cr.name})
	}
	return m
}

// WriteText writes m in a line-oriented form:
//
//	concept <name> ops=<op,...> minimal=<{op,...}...> [refines=<name,...>]
//	slot <Concept.op> <kind> <tag,...> | when=<name>
//	common <a> <b> -> <c>
//	conversion <from> -> <to> <kind>
//	adapter <type> -> <tag>
//	rule <kind> <name>
func (m Manifest) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, c := range m.Concepts {
		fmt.Fprintf(&b, "concept %s ops=%s minimal=", c.Name, strings.Join(c.Operations, ","))
		for _, set := range c.Minimal {
			b.WriteString("{" + strings.Join(set, ",") + "}")
		}
		if len(c.Refines) > 0 {
			b.WriteString(" refines=" + strings.Join(c.Refines, ","))
		}
		b.WriteByte('\n')
	}
	for _, s := range m.Slots {
		if s.When != "" {
			fmt.Fprintf(&b, "slot %s %s when=%s\n", s.Op, s.Kind, s.When)
			continue
		}
		fmt.Fprintf(&b, "slot %s %s %s\n", s.Op, s.Kind, strings.Join(s.Tags, ","))
	}
	for _, c := range m.Common {
		fmt.Fprintf(&b, "common %s %s -> %s\n", c.A, c.B, c.Common)
	}
	for _, c := range m.Conversions {
		fmt.Fprintf(&b, "conversion %s -> %s %s\n", c.From, c.To, c.Kind)
	}
	for _, a := range m.Adapters {
		fmt.Fprintf(&b, "adapter %s -> %s\n", a.Type, a.Tag)
	}
	for _, r := range m.Rules {
		fmt.Fprintf(&b, "rule %s %s\n", r.Kind, r.Name)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteYAML writes m as a YAML document.
func (m Manifest) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}
