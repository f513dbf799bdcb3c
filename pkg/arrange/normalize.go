package arrange

// NormalizeStyle collapses a style entry into a concrete definition.
//
// A bare name that matches the catalog produces a copy of that default; an
// unknown bare name produces a minimal definition holding only the name, so
// the pipeline never fails here and validation happens downstream. A partial
// override merges over the matching default field by field, explicitly set
// fields winning; with no catalog match the override passes through as-is.
//
// The function is total: every input maps to some definition.
func NormalizeStyle(cat *Catalog, spec StyleSpec) StyleDefinition {
	if cat == nil {
		cat = DefaultCatalog()
	}

	def, known := cat.Style(spec.Name)
	if !known {
		def = StyleDefinition{Name: spec.Name}
	}

	if ov := spec.Override; ov != nil {
		if ov.Name != "" {
			def.Name = ov.Name
		}
		if ov.Title != nil {
			def.Title = *ov.Title
		}
		if ov.Icon != nil {
			def.Icon = *ov.Icon
		}
		if ov.ModelElements != nil {
			def.ModelElements = append([]ElementKind(nil), ov.ModelElements...)
		}
		if ov.ClassName != nil {
			def.ClassName = *ov.ClassName
		}
		if ov.IsDefault != nil {
			def.IsDefault = *ov.IsDefault
		}
	}

	// An icon string naming a known alias becomes the concrete glyph.
	// Anything else stays as supplied: callers may pass arbitrary custom
	// icon references this way.
	if glyph, ok := cat.Icon(def.Icon); ok {
		def.Icon = glyph
	}

	return def
}

// NormalizeGroup collapses a group entry into a concrete definition, with
// the same bare-name and partial-override semantics as NormalizeStyle.
func NormalizeGroup(cat *Catalog, spec GroupSpec) GroupDefinition {
	if cat == nil {
		cat = DefaultCatalog()
	}

	def, known := cat.Group(spec.Name)
	if !known {
		def = GroupDefinition{Name: spec.Name}
	}

	if ov := spec.Override; ov != nil {
		if ov.Name != "" {
			def.Name = ov.Name
		}
		if ov.Title != nil {
			def.Title = *ov.Title
		}
		if ov.DefaultItem != nil {
			def.DefaultItem = *ov.DefaultItem
		}
		if ov.Items != nil {
			def.Items = append([]string(nil), ov.Items...)
		}
	}

	return def
}
