// Package organize implements the directory scanner and the file organizer.
// Both operate through a billy.Filesystem so the same logic runs against the
// host filesystem in production and an in-memory filesystem in tests, and so
// a dry run is the identical decision path with mutation switched off.
package organize

import (
	"fmt"
	"strings"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/tidy/api"
	"github.com/agentic-research/tidy/internal/rules"
)

// Organizer scans a directory, groups its files by category and relocates
// them into per-category subfolders. It is synchronous and keeps no state
// between invocations; concurrent invocations against the same directory
// are the caller's problem to serialize.
type Organizer struct {
	fs    billy.Filesystem
	table rules.Table
}

// New returns an Organizer that classifies with table and touches the
// filesystem through fs.
func New(fs billy.Filesystem, table rules.Table) *Organizer {
	return &Organizer{fs: fs, table: table}
}

// Scan lists the direct children of dir and groups the eligible files by
// category. A missing or non-directory path yields an empty grouping, not
// an error: "nothing to organize" is a normal outcome. Hidden files (names
// starting with a dot) and directories are skipped.
func (o *Organizer) Scan(dir string) *api.Grouping {
	g := api.NewGrouping()

	fi, err := o.fs.Stat(dir)
	if err != nil || !fi.IsDir() {
		return g
	}

	entries, err := o.fs.ReadDir(dir)
	if err != nil {
		return g
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		g.Add(o.table.Categorize(entry.Name()), entry.Name())
	}
	return g
}

// Organize moves every eligible file in dir into a subfolder named after its
// category, creating folders as needed. With dryRun set it runs the same
// grouping and decision path but skips all filesystem mutation, recording
// would_move actions instead. Per-file failures land in the result's error
// list and never abort the batch; whatever was already created or moved
// stays that way.
func (o *Organizer) Organize(dir string, dryRun bool) *api.OrganizeResult {
	res := &api.OrganizeResult{DryRun: dryRun}

	grouping := o.Scan(dir)
	for _, category := range grouping.Categories {
		files := grouping.Files[category]
		dest := o.fs.Join(dir, category)

		if !dryRun {
			if err := o.fs.MkdirAll(dest, 0o755); err != nil {
				// Without a destination folder none of the category's
				// files can move; report each and keep going.
				for _, f := range files {
					res.Errors = append(res.Errors, api.MoveError{File: f, Message: err.Error()})
				}
				continue
			}
		}
		res.CreatedFolders = append(res.CreatedFolders, category)

		for _, f := range files {
			if dryRun {
				res.MovedFiles = append(res.MovedFiles, api.MovedFile{
					File: f, Category: category, Action: api.ActionWouldMove,
				})
				continue
			}

			src := o.fs.Join(dir, f)
			target := o.fs.Join(dest, f)

			// os.Rename silently replaces an existing destination on POSIX;
			// a name collision must surface as a per-file error instead.
			if _, err := o.fs.Stat(target); err == nil {
				res.Errors = append(res.Errors, api.MoveError{
					File:    f,
					Message: fmt.Sprintf("destination already exists: %s", o.fs.Join(category, f)),
				})
				continue
			}

			if err := o.fs.Rename(src, target); err != nil {
				res.Errors = append(res.Errors, api.MoveError{File: f, Message: err.Error()})
				continue
			}
			res.MovedFiles = append(res.MovedFiles, api.MovedFile{
				File: f, Category: category, Action: api.ActionMoved,
			})
		}
	}
	return res
}
