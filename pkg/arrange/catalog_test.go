package arrange

import "testing"

// Every built-in style must validate under full capabilities; a catalog
// entry failing its own pipeline is a construction bug, not a runtime
// condition.
func TestDefaultCatalog_StylesAreValid(t *testing.T) {
	cat := DefaultCatalog()
	caps := CapabilitySet{Block: true, Inline: true}

	for _, name := range cat.StyleNames() {
		style, ok := cat.Style(name)
		if !ok {
			t.Fatalf("style %q listed but not retrievable", name)
		}
		if ok, _ := ValidateStyle(style, caps); !ok {
			t.Errorf("built-in style %q does not validate", name)
		}
		if style.Icon == "" {
			t.Errorf("built-in style %q has no icon", name)
		}
		if style.Title == "" {
			t.Errorf("built-in style %q has no title", name)
		}
	}
}

func TestDefaultCatalog_GroupsReferenceBuiltinStyles(t *testing.T) {
	cat := DefaultCatalog()

	for _, name := range []string{"wrapText", "breakText"} {
		group, ok := cat.Group(name)
		if !ok {
			t.Fatalf("expected built-in group %q", name)
		}
		if len(group.Items) == 0 {
			t.Errorf("group %q has no items", name)
		}
		for _, item := range group.Items {
			if _, ok := cat.Style(item); !ok {
				t.Errorf("group %q references unknown style %q", name, item)
			}
		}
		found := false
		for _, item := range group.Items {
			if item == group.DefaultItem {
				found = true
			}
		}
		if !found {
			t.Errorf("group %q default item %q is not a member", name, group.DefaultItem)
		}
	}
}

func TestDefaultCatalog_LookupsReturnCopies(t *testing.T) {
	cat := DefaultCatalog()

	style, _ := cat.Style("alignLeft")
	style.ModelElements[0] = "mutated"
	style.Title = "mutated"

	again, _ := cat.Style("alignLeft")
	if again.ModelElements[0] != KindBlock || again.Title == "mutated" {
		t.Error("catalog style was mutated through a lookup result")
	}

	group, _ := cat.Group("wrapText")
	group.Items[0] = "mutated"

	gAgain, _ := cat.Group("wrapText")
	if gAgain.Items[0] != "alignLeft" {
		t.Error("catalog group was mutated through a lookup result")
	}
}

func TestDefaultCatalog_UnknownLookups(t *testing.T) {
	cat := DefaultCatalog()

	if _, ok := cat.Style("nope"); ok {
		t.Error("unexpected style hit")
	}
	if _, ok := cat.Group("nope"); ok {
		t.Error("unexpected group hit")
	}
	if _, ok := cat.Icon("nope"); ok {
		t.Error("unexpected icon hit")
	}
}
