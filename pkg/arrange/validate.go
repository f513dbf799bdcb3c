package arrange

// capabilityFor maps an element kind to the host capability that covers it.
var capabilityFor = map[ElementKind]string{
	KindBlock:  "block",
	KindInline: "inline",
}

// ValidateStyle reports whether a normalized style is usable under the
// active capability set. A style missing its name or declaring no element
// kinds is structurally invalid. Otherwise it is valid when at least one
// declared kind is covered by an active capability; declared kinds the host
// cannot place are tolerated, not pruned.
//
// When the style fails only the capability check, missing names the
// capabilities that would have made it valid, one per declared kind.
func ValidateStyle(style StyleDefinition, caps CapabilitySet) (ok bool, missing []string) {
	if style.Name == "" || len(style.ModelElements) == 0 {
		return false, nil
	}

	for _, kind := range style.ModelElements {
		if caps.Supports(kind) {
			return true, nil
		}
		if name, known := capabilityFor[kind]; known {
			missing = append(missing, name)
		}
	}
	return false, missing
}
