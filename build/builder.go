// Package build orchestrates a documentation build run: it mirrors the
// source directory into the full-notes tree and writes hidden-section
// filtered chapters into the chapters tree.
package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/notestrip"
	"github.com/fwojciec/notestrip/fs"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Builder runs a single documentation build. Entries are independent of one
// another, so they may be processed concurrently; the default is sequential
// processing, which matches the scale of a documentation tree.
type Builder struct {
	Config notestrip.Config
	Filter notestrip.Filter
	Logger *slog.Logger

	// Concurrency bounds the number of entries processed in parallel.
	// Values below 1 mean sequential processing.
	Concurrency int
}

// Run processes every immediate entry of the source directory. Any
// filesystem error aborts the run; outputs written before the failure are
// left in place, since there is no partial-success semantics to preserve.
func (b *Builder) Run(ctx context.Context) (*notestrip.BuildResult, error) {
	if err := b.Config.Validate(); err != nil {
		return nil, err
	}
	if b.Filter == nil {
		return nil, notestrip.Errorf(notestrip.EINVALID, "filter required")
	}

	begin := time.Now()

	entries, err := os.ReadDir(b.Config.SourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notestrip.Errorf(notestrip.ENOTFOUND, "source directory %q not found", b.Config.SourceDir)
		}
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	if err := os.MkdirAll(b.Config.FullNotesDir, 0755); err != nil {
		return nil, fmt.Errorf("create full-notes directory: %w", err)
	}
	if err := os.MkdirAll(b.Config.ChaptersDir, 0755); err != nil {
		return nil, fmt.Errorf("create chapters directory: %w", err)
	}

	concurrency := b.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu      sync.Mutex
		results = make([]notestrip.EntryResult, 0, len(entries))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := b.processEntry(entry)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Directory order is not guaranteed under concurrency; sort for
	// deterministic reporting.
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	result := &notestrip.BuildResult{
		RunID:    uuid.NewString(),
		Entries:  results,
		Duration: time.Since(begin),
	}

	b.log().Info("build complete",
		"run_id", result.RunID,
		"entries", len(result.Entries),
		"chapters", result.ChapterCount(),
		"removed", result.TotalRemoved(),
		"duration", result.Duration,
	)

	return result, nil
}

func (b *Builder) processEntry(entry os.DirEntry) (notestrip.EntryResult, error) {
	if !entry.IsDir() && notestrip.IsChapterName(entry.Name()) {
		return b.processChapter(entry.Name())
	}
	return b.processAsset(entry)
}

// processChapter writes the unmodified chapter bytes to the full-notes tree
// and the filtered text to the chapters tree. The full-notes copy must stay
// byte-identical to the source, so it is written before filtering touches
// anything.
func (b *Builder) processChapter(name string) (notestrip.EntryResult, error) {
	src := filepath.Join(b.Config.SourceDir, name)
	content, err := os.ReadFile(src)
	if err != nil {
		return notestrip.EntryResult{}, fmt.Errorf("read chapter %s: %w", name, err)
	}

	ch := &notestrip.Chapter{Name: name, Content: string(content)}
	if err := ch.Validate(); err != nil {
		return notestrip.EntryResult{}, err
	}

	if err := fs.WriteFile(filepath.Join(b.Config.FullNotesDir, name), content); err != nil {
		return notestrip.EntryResult{}, fmt.Errorf("write full-notes %s: %w", name, err)
	}

	filtered, removed, err := b.Filter.Filter(ch.Content)
	if err != nil {
		return notestrip.EntryResult{}, fmt.Errorf("filter chapter %s: %w", name, err)
	}

	if err := fs.WriteFile(filepath.Join(b.Config.ChaptersDir, name), []byte(filtered)); err != nil {
		return notestrip.EntryResult{}, fmt.Errorf("write chapters %s: %w", name, err)
	}

	b.log().Debug("filtered chapter", "name", name, "removed", removed)

	return notestrip.EntryResult{
		Name:        name,
		Kind:        notestrip.EntryChapter,
		ContentHash: contentHash(content),
		Removed:     removed,
	}, nil
}

// processAsset copies a non-chapter entry verbatim into both output trees.
// In-place builds already have the asset at its chapters location, so only
// the full-notes copy happens there.
func (b *Builder) processAsset(entry os.DirEntry) (notestrip.EntryResult, error) {
	name := entry.Name()
	src := filepath.Join(b.Config.SourceDir, name)

	if err := fs.CopyTree(src, filepath.Join(b.Config.FullNotesDir, name)); err != nil {
		return notestrip.EntryResult{}, fmt.Errorf("copy %s to full-notes: %w", name, err)
	}

	if !b.Config.InPlace() {
		if err := fs.CopyTree(src, filepath.Join(b.Config.ChaptersDir, name)); err != nil {
			return notestrip.EntryResult{}, fmt.Errorf("copy %s to chapters: %w", name, err)
		}
	}

	res := notestrip.EntryResult{Name: name, Kind: notestrip.EntryAsset}
	if !entry.IsDir() {
		content, err := os.ReadFile(src)
		if err != nil {
			return notestrip.EntryResult{}, fmt.Errorf("read asset %s: %w", name, err)
		}
		res.ContentHash = contentHash(content)
	}

	b.log().Debug("copied asset", "name", name, "dir", entry.IsDir())

	return res, nil
}

func (b *Builder) log() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// contentHash returns the xxhash64 digest of content as a fixed-width hex
// string.
func contentHash(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
