package api

// Move actions recorded in an OrganizeResult.
const (
	// ActionMoved means the file was relocated on disk.
	ActionMoved = "moved"
	// ActionWouldMove means a dry run decided the file would be relocated.
	ActionWouldMove = "would_move"
)

// Grouping maps categories to the files assigned to them by a scan.
// Categories holds category names in first-seen order; Files holds the
// filenames per category in directory-listing order. Listing order is
// platform-defined — callers that need sorted output sort for themselves.
type Grouping struct {
	// Categories in the order they were first encountered during the scan.
	Categories []string `json:"categories"`
	// Files per category, scan order preserved.
	Files map[string][]string `json:"files"`
}

// NewGrouping returns an empty Grouping ready for Add calls.
func NewGrouping() *Grouping {
	return &Grouping{Files: make(map[string][]string)}
}

// Add appends file to category, registering the category on first use.
func (g *Grouping) Add(category, file string) {
	if _, ok := g.Files[category]; !ok {
		g.Categories = append(g.Categories, category)
	}
	g.Files[category] = append(g.Files[category], file)
}

// Empty reports whether the scan found nothing to organize.
func (g *Grouping) Empty() bool {
	return len(g.Categories) == 0
}

// Total returns the number of files across all categories.
func (g *Grouping) Total() int {
	n := 0
	for _, files := range g.Files {
		n += len(files)
	}
	return n
}

// MovedFile records one file-to-category assignment made by an organize run.
type MovedFile struct {
	File     string `json:"file"`
	Category string `json:"category"`
	// Action is ActionMoved or ActionWouldMove.
	Action string `json:"action"`
}

// MoveError records a single file that could not be moved. The message keeps
// the underlying system error text for diagnosis.
type MoveError struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// OrganizeResult is the outcome of one organize invocation. A failed move
// never aborts the batch: it becomes an Errors entry and the remaining files
// are still processed. Folders and files already touched before a failure
// stay where they are.
type OrganizeResult struct {
	// DryRun reports whether the run only simulated changes.
	DryRun bool `json:"dry_run"`
	// CreatedFolders lists categories whose destination folder was created
	// or, on a dry run, would be used.
	CreatedFolders []string `json:"created_folders"`
	// MovedFiles lists per-file outcomes in processing order.
	MovedFiles []MovedFile `json:"moved_files"`
	// Errors lists files that failed to move, in processing order.
	Errors []MoveError `json:"errors"`
}
