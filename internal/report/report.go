// Package report renders scan and organize results for humans and machines.
// Rendering sorts categories and filenames so output is stable even though
// scan order is platform-defined.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/tidy/api"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
	okColor     = color.New(color.FgGreen)
)

func paint(useColor bool, c *color.Color, s string) string {
	if !useColor {
		return s
	}
	return c.Sprint(s)
}

// plural returns "file" or "files".
func plural(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}

// RenderGrouping formats a scan result as readable text.
func RenderGrouping(g *api.Grouping, useColor bool) string {
	if g.Empty() {
		return "No files found, or the directory does not exist."
	}

	categories := append([]string(nil), g.Categories...)
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString(paint(useColor, headerColor, "Files by category") + "\n")
	for _, category := range categories {
		files := append([]string(nil), g.Files[category]...)
		sort.Strings(files)

		fmt.Fprintf(&b, "\n%s (%d %s):\n", paint(useColor, headerColor, category), len(files), plural(len(files)))
		for _, f := range files {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}
	fmt.Fprintf(&b, "\nTotal: %d %s", g.Total(), plural(g.Total()))
	return b.String()
}

// RenderOrganize formats an organize result as readable text, mirroring the
// shape of the run: mode banner, folders, moves, errors, totals.
func RenderOrganize(r *api.OrganizeResult, useColor bool) string {
	var b strings.Builder

	if r.DryRun {
		b.WriteString(paint(useColor, headerColor, "DRY RUN - Preview") + "\n")
	} else {
		b.WriteString(paint(useColor, okColor, "Organization complete") + "\n")
	}

	if len(r.CreatedFolders) > 0 {
		b.WriteString("\nCreated/used folders:\n")
		for _, folder := range r.CreatedFolders {
			fmt.Fprintf(&b, "  - %s/\n", folder)
		}
	}

	if len(r.MovedFiles) > 0 {
		verb := "moved"
		if r.DryRun {
			verb = "would be moved"
		}
		fmt.Fprintf(&b, "\nFiles %s:\n", verb)
		for _, mf := range r.MovedFiles {
			fmt.Fprintf(&b, "  - %s → %s/\n", mf.File, mf.Category)
		}
		fmt.Fprintf(&b, "\nTotal: %d %s", len(r.MovedFiles), plural(len(r.MovedFiles)))
	} else {
		b.WriteString("\nNo files to organize.")
	}

	if len(r.Errors) > 0 {
		b.WriteString("\n\n" + paint(useColor, errorColor, "Errors:") + "\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  - %s: %s\n", e.File, e.Message)
		}
	}

	if r.DryRun {
		b.WriteString("\n\nRun with dry_run=false to actually move the files.")
	}
	return b.String()
}

// JSON renders any result type as indented JSON, honoring the api json tags.
func JSON(v any) (string, error) {
	out, err := oj.Marshal(v, 2)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(out), nil
}
