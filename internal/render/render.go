// Package render formats resolved arrangement results for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/figstyle/figstyle/pkg/arrange"
)

var titleCaser = cases.Title(language.English)

// Renderer turns a resolved result into terminal output.
type Renderer struct {
	theme Theme
}

// New creates a renderer with the given theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Table renders styles and groups as aligned sections.
func (r *Renderer) Table(res arrange.Result) string {
	var sb strings.Builder

	sb.WriteString(r.theme.Header.Render(titleCaser.String("styles")))
	sb.WriteString("\n")
	if len(res.Styles) == 0 {
		sb.WriteString(r.theme.Muted.Render("  (none)"))
		sb.WriteString("\n")
	} else {
		r.writeStyleRows(&sb, res.Styles)
	}

	sb.WriteString("\n")
	sb.WriteString(r.theme.Header.Render(titleCaser.String("groups")))
	sb.WriteString("\n")
	if len(res.Groups) == 0 {
		sb.WriteString(r.theme.Muted.Render("  (none)"))
		sb.WriteString("\n")
	} else {
		for _, g := range res.Groups {
			sb.WriteString("  ")
			sb.WriteString(r.theme.Primary.Render(g.Name))
			sb.WriteString(r.theme.Muted.Render(fmt.Sprintf("  [%s]  default: %s",
				strings.Join(g.Items, ", "), g.DefaultItem)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (r *Renderer) writeStyleRows(sb *strings.Builder, styles []arrange.StyleDefinition) {
	nameWidth, titleWidth := 0, 0
	for _, s := range styles {
		if w := runewidth.StringWidth(s.Name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(displayTitle(s)); w > titleWidth {
			titleWidth = w
		}
	}

	for _, s := range styles {
		sb.WriteString("  ")
		sb.WriteString(s.Icon)
		sb.WriteString(" ")
		sb.WriteString(r.theme.Primary.Render(pad(s.Name, nameWidth)))
		sb.WriteString("  ")
		sb.WriteString(pad(displayTitle(s), titleWidth))
		sb.WriteString("  ")
		sb.WriteString(r.theme.Muted.Render(kindTags(s)))
		if s.ClassName != "" {
			sb.WriteString(r.theme.Muted.Render("  ." + s.ClassName))
		}
		if s.IsDefault {
			sb.WriteString("  ")
			sb.WriteString(r.theme.Header.Render(r.theme.Marker))
		}
		sb.WriteString("\n")
	}
}

// Names renders one style name per line, for piping.
func (r *Renderer) Names(res arrange.Result) string {
	var sb strings.Builder
	for _, s := range res.Styles {
		sb.WriteString(s.Name)
		sb.WriteString("\n")
	}
	return sb.String()
}

// JSON renders the result for automation.
func (r *Renderer) JSON(res arrange.Result) (string, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(data) + "\n", nil
}

// Warnings renders diagnostics, one per line.
func (r *Renderer) Warnings(warnings []arrange.Warning) string {
	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString(r.theme.Warning.Render("warning: " + describe(w)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func describe(w arrange.Warning) string {
	switch w.Kind {
	case arrange.WarnInvalidStyle:
		name := "(unnamed)"
		if w.Style != nil && w.Style.Name != "" {
			name = w.Style.Name
		}
		if len(w.Missing) > 0 {
			return fmt.Sprintf("style %q dropped, needs capability %s",
				name, strings.Join(w.Missing, " or "))
		}
		return fmt.Sprintf("style %q dropped, definition incomplete", name)
	case arrange.WarnInvalidGroup:
		name := "(unnamed)"
		if w.Group != nil && w.Group.Name != "" {
			name = w.Group.Name
		}
		return fmt.Sprintf("group %q lost members that did not resolve", name)
	}
	return string(w.Kind)
}

// displayTitle falls back to a title-cased name when a definition carries no
// title of its own.
func displayTitle(s arrange.StyleDefinition) string {
	if s.Title != "" {
		return s.Title
	}
	return titleCaser.String(s.Name)
}

func kindTags(s arrange.StyleDefinition) string {
	tags := make([]string, len(s.ModelElements))
	for i, k := range s.ModelElements {
		tags[i] = string(k)
	}
	return strings.Join(tags, "+")
}

// pad right-pads to a visual width, runewidth-aware for the glyph column.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
