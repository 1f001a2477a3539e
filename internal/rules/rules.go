// Package rules holds the extension-to-category table and the classifier
// built on it. The table is constructed once at startup and never mutated,
// so it is safe to share without synchronization.
package rules

import "strings"

// Others is the synthetic category for files no table entry matches,
// including files without an extension.
const Others = "Others"

// Category is a named bucket of lowercase file extensions. Extensions
// include the leading dot, e.g. ".pdf".
type Category struct {
	Name       string
	Extensions []string
}

// Table is an ordered list of categories. Order is the tie-break: if an
// extension is listed under more than one category, the first category in
// table order wins. Extensions in the default table are unique across
// categories, but a duplicate must not break classification.
type Table []Category

// Default returns the compiled-in reference table. Extending it is a
// build-time change, not a runtime parameter.
func Default() Table {
	return Table{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".heic", ".webp"}},
		{Name: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".pages"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mov", ".avi"}},
		{Name: "Code", Extensions: []string{".py", ".js", ".java", ".cpp", ".go"}},
	}
}

// Categorize maps a filename to a category name. It never fails: unknown
// and missing extensions map to Others.
func (t Table) Categorize(filename string) string {
	ext := strings.ToLower(extension(filename))
	if ext == "" {
		return Others
	}
	for _, c := range t {
		for _, e := range c.Extensions {
			if e == ext {
				return c.Name
			}
		}
	}
	return Others
}

// extension returns the suffix from the last dot, inclusive. A name whose
// only dot is the leading character (".bashrc") has no extension — the dot
// marks a hidden file, not a suffix.
func extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return ""
	}
	return name[i:]
}
