package arrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultArrangements_CoversEveryCapabilityPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caps       CapabilitySet
		wantStyles []string
		wantGroups []string
	}{
		{
			name: "block and inline",
			caps: CapabilitySet{Block: true, Inline: true},
			wantStyles: []string{
				"inline", "alignLeft", "alignRight",
				"alignCenter", "alignBlockLeft", "alignBlockRight",
			},
			wantGroups: []string{"wrapText", "breakText"},
		},
		{
			name:       "block only",
			caps:       CapabilitySet{Block: true},
			wantStyles: []string{"full", "side"},
			wantGroups: nil,
		},
		{
			name:       "inline only",
			caps:       CapabilitySet{Inline: true},
			wantStyles: []string{"inline", "alignLeft", "alignRight"},
			wantGroups: nil,
		},
		{
			name:       "neither",
			caps:       CapabilitySet{},
			wantStyles: nil,
			wantGroups: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			styles, groups := DefaultArrangements(tt.caps)
			assert.Equal(t, tt.wantStyles, styles)
			assert.Equal(t, tt.wantGroups, groups)
		})
	}
}

func TestDefaultConfig_ResolvesCleanly_ForEveryCapabilityPair(t *testing.T) {
	t.Parallel()

	pairs := []CapabilitySet{
		{Block: true, Inline: true},
		{Block: true},
		{Inline: true},
		{},
	}

	for _, caps := range pairs {
		var rec Recorder
		res := Resolve(nil, DefaultConfig(caps), caps, &rec)

		wantStyles, wantGroups := DefaultArrangements(caps)
		require.Len(t, res.Styles, len(wantStyles))
		require.Len(t, res.Groups, len(wantGroups))
		assert.Empty(t, rec.Warnings, "defaults for %+v must resolve without drops", caps)
	}
}
