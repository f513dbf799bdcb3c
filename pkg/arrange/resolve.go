package arrange

// Resolve runs the full pipeline: normalize each configured entry, drop
// styles the active capabilities cannot place, then cross-check group
// memberships against the surviving styles. Dropped definitions are reported
// on r; the returned result is always well formed. A nil cat uses the
// built-in catalog, a nil r discards warnings.
//
// Resolve treats all inputs as immutable snapshots and returns fresh
// definitions throughout, so running it twice over the same configuration
// yields identical results.
func Resolve(cat *Catalog, cfg Config, caps CapabilitySet, r Reporter) Result {
	if cat == nil {
		cat = DefaultCatalog()
	}
	if r == nil {
		r = discard{}
	}

	res := Result{
		Styles: make([]StyleDefinition, 0, len(cfg.Arrangements)),
		Groups: make([]GroupDefinition, 0, len(cfg.Groups)),
	}

	surviving := make(map[string]bool, len(cfg.Arrangements))
	for _, spec := range cfg.Arrangements {
		style := NormalizeStyle(cat, spec)
		ok, missing := ValidateStyle(style, caps)
		if !ok {
			s := style
			r.Report(Warning{Kind: WarnInvalidStyle, Style: &s, Missing: missing})
			continue
		}
		res.Styles = append(res.Styles, style)
		surviving[style.Name] = true
	}

	for _, spec := range cfg.Groups {
		group := NormalizeGroup(cat, spec)
		items := make([]string, 0, len(group.Items))
		for _, item := range group.Items {
			if surviving[item] {
				items = append(items, item)
			}
		}

		if len(items) < len(group.Items) || len(items) == 0 {
			g := group.clone()
			r.Report(Warning{Kind: WarnInvalidGroup, Group: &g})
		}
		if len(items) == 0 {
			continue
		}

		group.Items = items
		res.Groups = append(res.Groups, group)
	}

	return res
}
