package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	slidemaker "github.com/alnah/go-slidemaker"
	"github.com/alnah/go-slidemaker/internal/config"
	"github.com/alnah/go-slidemaker/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrReadInput     = errors.New("failed to read order of service")
	ErrWriteOutput   = errors.New("failed to write deck")
	ErrLabelsRefused = errors.New("generation cancelled: reserved labels left in the text")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// stdinArg reads the order of service from standard input.
const stdinArg = "-"

// deckJob holds the resolved parameters of one deck generation.
type deckJob struct {
	inputPath   string
	service     slidemaker.ServiceType
	notice      string
	name        string
	nameSet     bool
	outputDir   string
	dateFormat  string
	html        bool
	htmlOnly    bool
	policy      string
	interactive bool // the label policy may prompt on stdin
	quiet       bool
	verbose     bool
}

// deckOutput describes the files written for a deck.
type deckOutput struct {
	ID       string
	Name     string
	PDFPath  string
	HTMLPath string
	Slides   int
	Labels   []string
	Duration time.Duration
}

// runGenerate reads an order of service and writes its deck.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags("generate", args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForEmptyInput())
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrInvalidFlags, len(positional))
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

	text, err := readInput(job.inputPath, env.Stdin)
	if err != nil {
		return err
	}

	conv, err := newConverter(env, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	out, err := generateDeck(ctx, conv, text, job, env)
	if err != nil {
		return err
	}

	printDeckOutput(env.Stdout, job, out, conv.TemplateName())
	return nil
}

// newDeckJob resolves the generation parameters from flags and settings.
func newDeckJob(inputPath string, flags *generateFlags, cfg *config.Config) (*deckJob, error) {
	service, err := slidemaker.ParseServiceType(cfg.Service.Default)
	if err != nil {
		return nil, err
	}

	notice := flags.deck.notice
	if notice == "" {
		notice = noticeFor(cfg, service)
	}

	return &deckJob{
		inputPath:   inputPath,
		service:     service,
		notice:      notice,
		name:        flags.output.name,
		nameSet:     flags.output.nameSet,
		outputDir:   cfg.Output.DefaultDir,
		dateFormat:  cfg.Output.DateFormat,
		html:        cfg.Render.HTML,
		htmlOnly:    flags.output.htmlOnly,
		policy:      cfg.Labels.Policy,
		interactive: inputPath != stdinArg,
		quiet:       flags.common.quiet,
		verbose:     flags.common.verbose,
	}, nil
}

// deckName returns the explicit --name, or the default name of the next
// service after now.
func (j *deckJob) deckName(now time.Time) (string, error) {
	if j.nameSet {
		return j.name, nil
	}
	return slidemaker.DefaultDeckName(j.service, now, j.dateFormat)
}

// readInput reads the order of service from a file, or stdin for "-".
func readInput(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinArg {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- user-provided input path
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
	}
	return string(data), nil
}

// generateDeck converts text and writes the deck files of job.
func generateDeck(ctx context.Context, conv DeckConverter, text string, job *deckJob, env *Environment) (*deckOutput, error) {
	start := env.Now()

	labels := slidemaker.ScanReservedLabels(text)
	if err := checkReservedLabels(labels, job, env); err != nil {
		return nil, err
	}

	name, err := job.deckName(start)
	if err != nil {
		return nil, err
	}
	pdfFile, err := slidemaker.DeckFileName(name, "pdf")
	if err != nil {
		return nil, err
	}
	htmlFile, err := slidemaker.DeckFileName(name, "html")
	if err != nil {
		return nil, err
	}

	res, err := conv.Convert(ctx, slidemaker.Input{
		Text:                text,
		Service:             job.service,
		Notice:              job.notice,
		Title:               name,
		AllowReservedLabels: true,
		HTMLOnly:            job.htmlOnly,
	})
	if err != nil {
		return nil, withRenderHints(err, conv.TemplateName())
	}

	if job.outputDir != "" {
		if err := os.MkdirAll(job.outputDir, dirPermissions); err != nil {
			return nil, fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}

	out := &deckOutput{ID: res.ID, Name: name, Slides: len(res.Blocks), Labels: labels}

	if !job.htmlOnly {
		out.PDFPath = filepath.Join(job.outputDir, pdfFile)
		if err := writeDeckFile(out.PDFPath, res.PDF); err != nil {
			return nil, err
		}
	}
	if job.html || job.htmlOnly {
		out.HTMLPath = filepath.Join(job.outputDir, htmlFile)
		if err := writeDeckFile(out.HTMLPath, res.HTML); err != nil {
			return nil, err
		}
	}

	out.Duration = env.Now().Sub(start)
	return out, nil
}

// checkReservedLabels applies the label policy to the labels found in the
// text. A nil error means generation may go on with the labels kept.
func checkReservedLabels(labels []string, job *deckJob, env *Environment) error {
	if len(labels) == 0 {
		return nil
	}

	labelsErr := &slidemaker.ReservedLabelsError{Labels: labels}

	switch job.policy {
	case config.LabelPolicyIgnore:
		return nil
	case config.LabelPolicyFail:
		return fmt.Errorf("%w%s", labelsErr, hints.ForReservedLabels())
	}

	if !job.interactive {
		return fmt.Errorf("%w%s", labelsErr, hints.ForReservedLabels())
	}

	ok, err := confirmReservedLabels(env.Stdin, env.Stderr, labels)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLabelsRefused
	}
	return nil
}

// withRenderHints appends an actionable hint to conversion errors.
func withRenderHints(err error, templateName string) error {
	var hint string
	switch {
	case errors.Is(err, slidemaker.ErrEmptyDocument):
		hint = hints.ForEmptyInput()
	case errors.Is(err, slidemaker.ErrTemplateLayoutMissing):
		hint = hints.ForLayoutMissing(templateName)
	case errors.Is(err, slidemaker.ErrBrowserConnect):
		hint = hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, slidemaker.ErrPageLoad):
		hint = hints.ForTimeout()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// writeDeckFile writes one output file.
func writeDeckFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// printDeckOutput reports the written files unless quiet.
func printDeckOutput(w io.Writer, job *deckJob, out *deckOutput, templateName string) {
	if job.quiet {
		return
	}

	for _, path := range []string{out.PDFPath, out.HTMLPath} {
		if path != "" {
			fmt.Fprintf(w, "Generated %s (%d slides)\n", path, out.Slides)
		}
	}

	if job.verbose {
		fmt.Fprintf(w, "  deck:     %s\n", out.ID)
		fmt.Fprintf(w, "  service:  %s\n", job.service.Label())
		fmt.Fprintf(w, "  template: %s\n", templateName)
		if len(out.Labels) > 0 {
			fmt.Fprintf(w, "  labels:   %d kept\n", len(out.Labels))
		}
		fmt.Fprintf(w, "  time:     %s\n", out.Duration.Round(time.Millisecond))
	}
}
