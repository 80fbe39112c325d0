package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/notestrip"
	"github.com/fwojciec/notestrip/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	cfg := notestrip.Config{
		SourceDir:    c.Source,
		FullNotesDir: c.FullNotes,
		ChaptersDir:  c.Chapters,
	}
	if cfg.ChaptersDir == "" {
		cfg.ChaptersDir = cfg.SourceDir
	}

	builder := &build.Builder{
		Config:      cfg,
		Filter:      deps.Filter,
		Logger:      deps.Logger,
		Concurrency: c.Concurrency,
	}

	result, err := builder.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notestrip.ErrorMessage(err))
		return err
	}

	for _, e := range result.Entries {
		hash := e.ContentHash
		if hash == "" {
			hash = "-"
		}
		switch e.Kind {
		case notestrip.EntryChapter:
			fmt.Fprintf(deps.Stdout, "%-16s  %s  hidden sections removed: %d\n", hash, e.Name, e.Removed)
		default:
			fmt.Fprintf(deps.Stdout, "%-16s  %s  copied\n", hash, e.Name)
		}
	}

	fmt.Fprintf(deps.Stdout, "Built %d entries (%d chapters, %d hidden sections removed) in %s\n",
		len(result.Entries), result.ChapterCount(), result.TotalRemoved(),
		result.Duration.Round(time.Millisecond))

	return nil
}
