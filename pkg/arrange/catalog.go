package arrange

// Catalog is the built-in reference set of styles, groups and icon aliases.
// Its tables are treated as templates: lookups hand out fresh copies, and
// nothing in the pipeline writes back into them.
type Catalog struct {
	styles map[string]StyleDefinition
	groups map[string]GroupDefinition
	icons  map[string]string
}

// Glyphs used as icon handles for the built-in styles. User configuration
// refers to them through the short alias names in the icon table.
const (
	glyphFull        = "█"
	glyphBlockLeft   = "▌"
	glyphBlockRight  = "▐"
	glyphCenter      = "▬"
	glyphInlineLeft  = "◖"
	glyphInlineRight = "◗"
	glyphInline      = "▪"
)

// DefaultCatalog returns the built-in catalog. Each call constructs a fresh
// instance, so callers can hold one for the lifetime of a resolution without
// sharing mutable state.
func DefaultCatalog() *Catalog {
	return &Catalog{
		styles: map[string]StyleDefinition{
			"inline": {
				Name:          "inline",
				Title:         "In line",
				Icon:          glyphInline,
				ModelElements: []ElementKind{KindInline},
				IsDefault:     true,
			},
			"block": {
				Name:          "block",
				Title:         "Centered",
				Icon:          glyphCenter,
				ModelElements: []ElementKind{KindBlock},
				IsDefault:     true,
			},
			"full": {
				Name:          "full",
				Title:         "Full size",
				Icon:          glyphFull,
				ModelElements: []ElementKind{KindBlock},
				IsDefault:     true,
			},
			"side": {
				Name:          "side",
				Title:         "Side aligned",
				Icon:          glyphInlineRight,
				ModelElements: []ElementKind{KindBlock},
				ClassName:     "arrange-side",
			},
			"alignLeft": {
				Name:          "alignLeft",
				Title:         "Left aligned",
				Icon:          glyphInlineLeft,
				ModelElements: []ElementKind{KindBlock, KindInline},
				ClassName:     "arrange-align-left",
			},
			"alignRight": {
				Name:          "alignRight",
				Title:         "Right aligned",
				Icon:          glyphInlineRight,
				ModelElements: []ElementKind{KindBlock, KindInline},
				ClassName:     "arrange-align-right",
			},
			"alignCenter": {
				Name:          "alignCenter",
				Title:         "Centered",
				Icon:          glyphCenter,
				ModelElements: []ElementKind{KindBlock},
				ClassName:     "arrange-align-center",
			},
			"alignBlockLeft": {
				Name:          "alignBlockLeft",
				Title:         "Left aligned",
				Icon:          glyphBlockLeft,
				ModelElements: []ElementKind{KindBlock},
				ClassName:     "arrange-block-align-left",
			},
			"alignBlockRight": {
				Name:          "alignBlockRight",
				Title:         "Right aligned",
				Icon:          glyphBlockRight,
				ModelElements: []ElementKind{KindBlock},
				ClassName:     "arrange-block-align-right",
			},
		},
		groups: map[string]GroupDefinition{
			"wrapText": {
				Name:        "wrapText",
				Title:       "Wrap text",
				DefaultItem: "alignLeft",
				Items:       []string{"alignLeft", "alignRight"},
			},
			"breakText": {
				Name:        "breakText",
				Title:       "Break text",
				DefaultItem: "alignCenter",
				Items:       []string{"alignBlockLeft", "alignCenter", "alignBlockRight"},
			},
		},
		icons: map[string]string{
			"full":        glyphFull,
			"left":        glyphBlockLeft,
			"right":       glyphBlockRight,
			"center":      glyphCenter,
			"inlineLeft":  glyphInlineLeft,
			"inlineRight": glyphInlineRight,
			"inline":      glyphInline,
		},
	}
}

// Style looks up a built-in style by name, returning a fresh copy.
func (c *Catalog) Style(name string) (StyleDefinition, bool) {
	s, ok := c.styles[name]
	if !ok {
		return StyleDefinition{}, false
	}
	return s.clone(), true
}

// Group looks up a built-in group by name, returning a fresh copy.
func (c *Catalog) Group(name string) (GroupDefinition, bool) {
	g, ok := c.groups[name]
	if !ok {
		return GroupDefinition{}, false
	}
	return g.clone(), true
}

// Icon resolves a short alias to its glyph.
func (c *Catalog) Icon(alias string) (string, bool) {
	glyph, ok := c.icons[alias]
	return glyph, ok
}

// StyleNames returns the names of every built-in style.
func (c *Catalog) StyleNames() []string {
	names := make([]string, 0, len(c.styles))
	for name := range c.styles {
		names = append(names, name)
	}
	return names
}
