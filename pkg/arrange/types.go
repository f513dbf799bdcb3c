// Package arrange normalizes arrangement (embedded-content style)
// configuration. It merges user-supplied entries over a built-in catalog,
// resolves icon aliases, validates definitions against the host's structural
// capabilities, and prunes group memberships that point at dropped styles.
//
// The engine is total: malformed input never produces an error, only a
// Warning on the injected Reporter and a smaller result.
package arrange

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ElementKind tags the structural element a style can attach to.
type ElementKind string

const (
	KindBlock  ElementKind = "block"
	KindInline ElementKind = "inline"
)

// CapabilitySet describes which structural placements the host supports.
// It is supplied by the host per resolution call and never stored.
type CapabilitySet struct {
	Block  bool
	Inline bool
}

// Supports reports whether the set covers the given element kind.
func (c CapabilitySet) Supports(kind ElementKind) bool {
	switch kind {
	case KindBlock:
		return c.Block
	case KindInline:
		return c.Inline
	}
	return false
}

// StyleDefinition is a fully resolved arrangement style.
type StyleDefinition struct {
	Name          string        `yaml:"name" json:"name"`
	Title         string        `yaml:"title,omitempty" json:"title,omitempty"`
	Icon          string        `yaml:"icon,omitempty" json:"icon,omitempty"`
	ModelElements []ElementKind `yaml:"modelElements,omitempty" json:"modelElements,omitempty"`
	// ClassName is empty for semantic styles that rely on structural
	// placement alone.
	ClassName string `yaml:"className,omitempty" json:"className,omitempty"`
	IsDefault bool   `yaml:"isDefault,omitempty" json:"isDefault,omitempty"`
}

// clone returns a copy that shares no mutable state with the receiver.
func (s StyleDefinition) clone() StyleDefinition {
	out := s
	if s.ModelElements != nil {
		out.ModelElements = append([]ElementKind(nil), s.ModelElements...)
	}
	return out
}

// appliesTo reports whether the style declares the given element kind.
func (s StyleDefinition) appliesTo(kind ElementKind) bool {
	for _, k := range s.ModelElements {
		if k == kind {
			return true
		}
	}
	return false
}

// GroupDefinition is a fully resolved arrangement group.
type GroupDefinition struct {
	Name        string   `yaml:"name" json:"name"`
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	DefaultItem string   `yaml:"defaultItem,omitempty" json:"defaultItem,omitempty"`
	Items       []string `yaml:"items,omitempty" json:"items,omitempty"`
}

func (g GroupDefinition) clone() GroupDefinition {
	out := g
	if g.Items != nil {
		out.Items = append([]string(nil), g.Items...)
	}
	return out
}

// StyleOverride is the partial-object form of a style entry. Pointer fields
// distinguish "explicitly set" from "fill from the catalog default".
type StyleOverride struct {
	Name          string        `yaml:"name"`
	Title         *string       `yaml:"title"`
	Icon          *string       `yaml:"icon"`
	ModelElements []ElementKind `yaml:"modelElements"`
	ClassName     *string       `yaml:"className"`
	IsDefault     *bool         `yaml:"isDefault"`
}

// StyleSpec is one configured style entry: either a bare name or a partial
// override. The union collapses to a StyleDefinition in NormalizeStyle.
type StyleSpec struct {
	Name     string
	Override *StyleOverride
}

// Ref builds a bare-name style spec.
func Ref(name string) StyleSpec { return StyleSpec{Name: name} }

// UnmarshalYAML accepts either a scalar name or a mapping.
func (s *StyleSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&s.Name)
	case yaml.MappingNode:
		var ov StyleOverride
		if err := value.Decode(&ov); err != nil {
			return err
		}
		s.Name = ov.Name
		s.Override = &ov
		return nil
	}
	return fmt.Errorf("style entry: expected name or mapping, got yaml kind %d", value.Kind)
}

// GroupOverride is the partial-object form of a group entry.
type GroupOverride struct {
	Name        string   `yaml:"name"`
	Title       *string  `yaml:"title"`
	DefaultItem *string  `yaml:"defaultItem"`
	Items       []string `yaml:"items"`
}

// GroupSpec is one configured group entry: a bare name or a partial override.
type GroupSpec struct {
	Name     string
	Override *GroupOverride
}

// GroupRef builds a bare-name group spec.
func GroupRef(name string) GroupSpec { return GroupSpec{Name: name} }

// UnmarshalYAML accepts either a scalar name or a mapping.
func (g *GroupSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&g.Name)
	case yaml.MappingNode:
		var ov GroupOverride
		if err := value.Decode(&ov); err != nil {
			return err
		}
		g.Name = ov.Name
		g.Override = &ov
		return nil
	}
	return fmt.Errorf("group entry: expected name or mapping, got yaml kind %d", value.Kind)
}

// Config is the raw arrangement configuration supplied by the host.
// Both lists are optional.
type Config struct {
	Arrangements []StyleSpec `yaml:"arrangements"`
	Groups       []GroupSpec `yaml:"groups"`
}

// Result is the validated, fully resolved output of Resolve.
type Result struct {
	Styles []StyleDefinition `json:"styles"`
	Groups []GroupDefinition `json:"groups"`
}
