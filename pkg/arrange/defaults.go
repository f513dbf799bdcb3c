package arrange

// DefaultArrangements returns the canonical style and group names the host
// should request for a capability pair, before any user overrides apply.
// The table is exhaustive over the four combinations.
func DefaultArrangements(caps CapabilitySet) (styles, groups []string) {
	switch {
	case caps.Block && caps.Inline:
		return []string{
				"inline",
				"alignLeft",
				"alignRight",
				"alignCenter",
				"alignBlockLeft",
				"alignBlockRight",
			}, []string{
				"wrapText",
				"breakText",
			}
	case caps.Block:
		return []string{"full", "side"}, nil
	case caps.Inline:
		return []string{"inline", "alignLeft", "alignRight"}, nil
	}
	return nil, nil
}

// DefaultConfig builds a Config requesting the default arrangements for the
// capability pair, expressed as bare-name entries the normalizer resolves
// against the catalog.
func DefaultConfig(caps CapabilitySet) Config {
	styleNames, groupNames := DefaultArrangements(caps)

	var cfg Config
	for _, name := range styleNames {
		cfg.Arrangements = append(cfg.Arrangements, Ref(name))
	}
	for _, name := range groupNames {
		cfg.Groups = append(cfg.Groups, GroupRef(name))
	}
	return cfg
}
