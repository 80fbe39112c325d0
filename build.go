package notestrip

import (
	"path/filepath"
	"time"
)

// Default directory layout, matching the original build script.
const (
	DefaultSourceDir    = "docs/chapters"
	DefaultFullNotesDir = "docs/full-notes"
)

// Config holds the directory layout for a build run.
type Config struct {
	// SourceDir is the chapter source directory. It is only read during a
	// run unless ChaptersDir points back at it.
	SourceDir string

	// FullNotesDir receives the unfiltered mirror of SourceDir.
	FullNotesDir string

	// ChaptersDir receives the filtered output. It may equal SourceDir,
	// in which case chapter files are overwritten in place and assets
	// stay where they are.
	ChaptersDir string
}

// DefaultConfig returns the layout used by the original build script:
// chapters are filtered in place and the unfiltered mirror goes to
// docs/full-notes.
func DefaultConfig() Config {
	return Config{
		SourceDir:    DefaultSourceDir,
		FullNotesDir: DefaultFullNotesDir,
		ChaptersDir:  DefaultSourceDir,
	}
}

// InPlace reports whether the filtered output overwrites the source tree.
func (c Config) InPlace() bool {
	return filepath.Clean(c.ChaptersDir) == filepath.Clean(c.SourceDir)
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.SourceDir == "" {
		return Errorf(EINVALID, "source directory required")
	}
	if c.FullNotesDir == "" {
		return Errorf(EINVALID, "full-notes directory required")
	}
	if c.ChaptersDir == "" {
		return Errorf(EINVALID, "chapters directory required")
	}
	if filepath.Clean(c.FullNotesDir) == filepath.Clean(c.SourceDir) {
		return Errorf(EINVALID, "full-notes directory must differ from source directory")
	}
	return nil
}

// EntryKind classifies a processed source entry.
type EntryKind string

// EntryKind constants for EntryResult.
const (
	EntryChapter EntryKind = "chapter" // HTML file, filtered
	EntryAsset   EntryKind = "asset"   // anything else, copied verbatim
)

// EntryResult describes the outcome for a single source entry.
type EntryResult struct {
	Name        string    `json:"name"`
	Kind        EntryKind `json:"kind"`
	ContentHash string    `json:"contentHash"` // xxhash64 of the source bytes; empty for directories
	Removed     int       `json:"removed"`     // hidden sections removed; zero for assets
}

// BuildResult summarizes a completed build run.
type BuildResult struct {
	RunID    string        `json:"runId"`
	Entries  []EntryResult `json:"entries"`
	Duration time.Duration `json:"duration"`
}

// TotalRemoved returns the number of hidden sections removed across all
// chapters.
func (r *BuildResult) TotalRemoved() int {
	var n int
	for _, e := range r.Entries {
		n += e.Removed
	}
	return n
}

// ChapterCount returns the number of chapter entries processed.
func (r *BuildResult) ChapterCount() int {
	var n int
	for _, e := range r.Entries {
		if e.Kind == EntryChapter {
			n++
		}
	}
	return n
}
