package organize

import (
	"os"
	"path/filepath"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/tidy/api"
	"github.com/agentic-research/tidy/internal/rules"
)

// newTestOrganizer seeds an in-memory filesystem with files under /desk and
// returns an Organizer over it.
func newTestOrganizer(t *testing.T, files ...string) (*Organizer, billy.Filesystem) {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/desk", 0o755))
	for _, name := range files {
		require.NoError(t, util.WriteFile(fs, fs.Join("/desk", name), []byte(name), 0o644))
	}
	return New(fs, rules.Default()), fs
}

func exists(fs billy.Filesystem, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func TestScanMissingDirectory(t *testing.T) {
	org := New(memfs.New(), rules.Default())

	g := org.Scan("/nope")
	assert.True(t, g.Empty())
	assert.Zero(t, g.Total())
}

func TestScanPathIsAFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/notadir", []byte("x"), 0o644))
	org := New(fs, rules.Default())

	assert.True(t, org.Scan("/notadir").Empty())
}

func TestScanSkipsHiddenFilesAndDirectories(t *testing.T) {
	org, fs := newTestOrganizer(t, "report.pdf", ".DS_Store", ".hidden.jpg")
	require.NoError(t, fs.MkdirAll("/desk/subdir", 0o755))
	require.NoError(t, util.WriteFile(fs, "/desk/subdir/nested.jpg", []byte("x"), 0o644))

	g := org.Scan("/desk")
	require.Equal(t, []string{"Documents"}, g.Categories)
	assert.Equal(t, []string{"report.pdf"}, g.Files["Documents"])
	assert.Equal(t, 1, g.Total())
}

func TestScanGroupsByCategory(t *testing.T) {
	org, _ := newTestOrganizer(t, "a.jpg", "b.pdf", "c.xyz")

	g := org.Scan("/desk")
	assert.ElementsMatch(t, []string{"Images", "Documents", "Others"}, g.Categories)
	assert.Equal(t, []string{"a.jpg"}, g.Files["Images"])
	assert.Equal(t, []string{"b.pdf"}, g.Files["Documents"])
	assert.Equal(t, []string{"c.xyz"}, g.Files["Others"])
}

func TestOrganizeDryRunDoesNotTouchFilesystem(t *testing.T) {
	org, fs := newTestOrganizer(t, "a.jpg", "b.pdf", "c.xyz")

	res := org.Organize("/desk", true)

	assert.True(t, res.DryRun)
	assert.ElementsMatch(t, []string{"Images", "Documents", "Others"}, res.CreatedFolders)
	require.Len(t, res.MovedFiles, 3)
	for _, mf := range res.MovedFiles {
		assert.Equal(t, api.ActionWouldMove, mf.Action)
	}
	assert.Empty(t, res.Errors)

	// Filesystem state before == after.
	for _, name := range []string{"a.jpg", "b.pdf", "c.xyz"} {
		assert.True(t, exists(fs, "/desk/"+name), "%s should not have moved", name)
	}
	for _, folder := range []string{"Images", "Documents", "Others"} {
		assert.False(t, exists(fs, "/desk/"+folder), "%s/ should not exist after dry run", folder)
	}
}

func TestDryRunMatchesLiveAssignments(t *testing.T) {
	preview, _ := newTestOrganizer(t, "a.jpg", "b.pdf", "c.xyz")
	live, _ := newTestOrganizer(t, "a.jpg", "b.pdf", "c.xyz")

	dry := preview.Organize("/desk", true)
	wet := live.Organize("/desk", false)

	require.Len(t, wet.MovedFiles, len(dry.MovedFiles))
	for i := range dry.MovedFiles {
		assert.Equal(t, dry.MovedFiles[i].File, wet.MovedFiles[i].File)
		assert.Equal(t, dry.MovedFiles[i].Category, wet.MovedFiles[i].Category)
	}
	assert.Equal(t, dry.CreatedFolders, wet.CreatedFolders)
}

func TestOrganizeMovesFiles(t *testing.T) {
	org, fs := newTestOrganizer(t, "a.jpg", "b.pdf", "c.xyz")

	res := org.Organize("/desk", false)

	assert.ElementsMatch(t, []string{"Images", "Documents", "Others"}, res.CreatedFolders)
	require.Len(t, res.MovedFiles, 3)
	for _, mf := range res.MovedFiles {
		assert.Equal(t, api.ActionMoved, mf.Action)
	}
	assert.Empty(t, res.Errors)

	assert.True(t, exists(fs, "/desk/Images/a.jpg"))
	assert.True(t, exists(fs, "/desk/Documents/b.pdf"))
	assert.True(t, exists(fs, "/desk/Others/c.xyz"))
	for _, name := range []string{"a.jpg", "b.pdf", "c.xyz"} {
		assert.False(t, exists(fs, "/desk/"+name), "%s should have moved", name)
	}

	// Second run finds nothing: category folders are directories and the
	// scan skips them.
	again := org.Organize("/desk", false)
	assert.Empty(t, again.CreatedFolders)
	assert.Empty(t, again.MovedFiles)
	assert.Empty(t, again.Errors)
}

func TestOrganizeCollisionReportsErrorAndContinues(t *testing.T) {
	org, fs := newTestOrganizer(t, "a.jpg", "b.pdf")
	require.NoError(t, fs.MkdirAll("/desk/Documents", 0o755))
	require.NoError(t, util.WriteFile(fs, "/desk/Documents/b.pdf", []byte("occupied"), 0o644))

	res := org.Organize("/desk", false)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "b.pdf", res.Errors[0].File)
	assert.Contains(t, res.Errors[0].Message, "already exists")

	// The collision must not block the rest of the batch.
	require.Len(t, res.MovedFiles, 1)
	assert.Equal(t, "a.jpg", res.MovedFiles[0].File)
	assert.True(t, exists(fs, "/desk/Images/a.jpg"))

	// The failed source stays put, the occupant is untouched.
	assert.True(t, exists(fs, "/desk/b.pdf"))
	data, err := util.ReadFile(fs, "/desk/Documents/b.pdf")
	require.NoError(t, err)
	assert.Equal(t, "occupied", string(data))
}

// The engine behaves the same over the host filesystem as over memfs.
func TestOrganizeOnHostFilesystem(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"photo.jpg", "notes.txt", "blob.bin"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}

	org := New(osfs.New("/"), rules.Default())
	res := org.Organize(dir, false)

	require.Empty(t, res.Errors)
	require.Len(t, res.MovedFiles, 3)
	assert.FileExists(t, filepath.Join(dir, "Images", "photo.jpg"))
	assert.FileExists(t, filepath.Join(dir, "Documents", "notes.txt"))
	assert.FileExists(t, filepath.Join(dir, "Others", "blob.bin"))

	again := org.Organize(dir, false)
	assert.Empty(t, again.MovedFiles)
}
