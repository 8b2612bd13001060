package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce groups the bursts of events editors emit on save.
const watchDebounce = 300 * time.Millisecond

// runWatch regenerates the deck every time the input file changes, until
// interrupted. Reserved labels are never prompted for: they fail the build
// unless --yes or the ignore policy is set.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags("watch", args)
	if err != nil {
		return err
	}
	if len(positional) != 1 || positional[0] == stdinArg {
		return fmt.Errorf("%w: watch needs one input file", ErrNoInput)
	}

	cfg, err := loadSettings(flags.common.config)
	if err != nil {
		return err
	}
	mergeGenerateFlags(flags, cfg)

	job, err := newDeckJob(positional[0], flags, cfg)
	if err != nil {
		return err
	}
	job.interactive = false

	conv, err := newConverter(env, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	level := slog.LevelInfo
	switch {
	case flags.common.verbose:
		level = slog.LevelDebug
	case flags.common.quiet:
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))

	w := &deckWatcher{
		path:     job.inputPath,
		debounce: watchDebounce,
		logger:   logger,
		rebuild: func(ctx context.Context) error {
			text, err := readInput(job.inputPath, env.Stdin)
			if err != nil {
				return err
			}
			out, err := generateDeck(ctx, conv, text, job, env)
			if err != nil {
				return err
			}
			logger.Info("Deck generated",
				"deck_id", out.ID,
				"pdf", out.PDFPath,
				"html", out.HTMLPath,
				"slides", out.Slides,
				"duration", out.Duration.Round(time.Millisecond))
			return nil
		},
	}
	return w.Run(ctx)
}

// deckWatcher calls rebuild once at start and then after every debounced
// change of path. Rebuilds never overlap.
type deckWatcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	rebuild  func(ctx context.Context) error
}

// Run watches until ctx is done. A failed rebuild is logged, not returned.
func (w *deckWatcher) Run(ctx context.Context) error {
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolving watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file on save, so the directory is watched.
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	w.logger.Info("Watching order of service", "path", absPath)
	w.build(ctx)

	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				if event.Has(fsnotify.Remove) {
					w.logger.Warn("Order of service removed", "path", absPath)
				}
				continue
			}
			w.logger.Debug("Change detected", "path", event.Name, "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default: // rebuild already pending
				}
			})

		case <-fire:
			w.build(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}

// build runs one rebuild and logs its failure.
func (w *deckWatcher) build(ctx context.Context) {
	if err := w.rebuild(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		w.logger.Error("Deck generation failed", "error", err)
	}
}
