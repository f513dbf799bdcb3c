package arrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStyle_ChecksCapabilityCoverage(t *testing.T) {
	t.Parallel()

	blockOnly := StyleDefinition{Name: "full", ModelElements: []ElementKind{KindBlock}}
	inlineOnly := StyleDefinition{Name: "inline", ModelElements: []ElementKind{KindInline}}
	both := StyleDefinition{Name: "alignLeft", ModelElements: []ElementKind{KindBlock, KindInline}}

	tests := []struct {
		name        string
		style       StyleDefinition
		caps        CapabilitySet
		wantOK      bool
		wantMissing []string
	}{
		{"block style, block active", blockOnly, CapabilitySet{Block: true}, true, nil},
		{"block style, both active", blockOnly, CapabilitySet{Block: true, Inline: true}, true, nil},
		{"block style, inline only", blockOnly, CapabilitySet{Inline: true}, false, []string{"block"}},
		{"block style, none active", blockOnly, CapabilitySet{}, false, []string{"block"}},
		{"inline style, inline active", inlineOnly, CapabilitySet{Inline: true}, true, nil},
		{"inline style, block only", inlineOnly, CapabilitySet{Block: true}, false, []string{"inline"}},
		{"dual style, block only", both, CapabilitySet{Block: true}, true, nil},
		{"dual style, inline only", both, CapabilitySet{Inline: true}, true, nil},
		{"dual style, none active", both, CapabilitySet{}, false, []string{"block", "inline"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, missing := ValidateStyle(tt.style, tt.caps)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestValidateStyle_RejectsStructurallyInvalidDefinitions(t *testing.T) {
	t.Parallel()
	caps := CapabilitySet{Block: true, Inline: true}

	ok, missing := ValidateStyle(StyleDefinition{ModelElements: []ElementKind{KindBlock}}, caps)
	assert.False(t, ok, "missing name")
	assert.Nil(t, missing)

	ok, missing = ValidateStyle(StyleDefinition{Name: "bare"}, caps)
	assert.False(t, ok, "missing model elements")
	assert.Nil(t, missing)
}

func TestValidateStyle_ToleratesUnsupportedKindAlongsideSupported(t *testing.T) {
	t.Parallel()

	// A style declaring both kinds is accepted wholesale when either
	// capability is active; the unsupported kind stays declared.
	style := StyleDefinition{Name: "alignRight", ModelElements: []ElementKind{KindBlock, KindInline}}

	ok, _ := ValidateStyle(style, CapabilitySet{Inline: true})
	assert.True(t, ok)
	assert.Equal(t, []ElementKind{KindBlock, KindInline}, style.ModelElements)
}
