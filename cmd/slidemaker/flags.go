package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-slidemaker/internal/config"
)

// Sentinel errors for flag handling.
var (
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// templateFlags selects the template set.
type templateFlags struct {
	name      string
	assetPath string
}

// deckFlags holds the flags that shape a deck.
type deckFlags struct {
	service string
	notice  string
}

// outputFlags holds where and how decks are written.
type outputFlags struct {
	dir      string
	name     string
	nameSet  bool // --name given, even as ""
	html     bool // Write the HTML deck alongside the PDF
	htmlOnly bool // Write the HTML deck only, skip Chrome
}

// generateFlags holds all flags for the generate and watch commands.
type generateFlags struct {
	common   commonFlags
	template templateFlags
	deck     deckFlags
	output   outputFlags
	timeout  string
	yes      bool
}

// inspectFlags holds flags for the inspect command.
type inspectFlags struct {
	common commonFlags
	deck   deckFlags
	slides bool
}

// titleFlags holds flags for the title command.
type titleFlags struct {
	file  string
	line  int
	write bool
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common   commonFlags
	template templateFlags
	json     bool
}

// newFlagSet returns a FlagSet that reports errors to the caller only.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseFlagSet parses args, keeping flag.ErrHelp recognizable.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return nil
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show deck details and timing")
}

// addTemplateFlags adds template selection flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVar(&f.name, "template", "", "template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addDeckFlags adds service flags to a FlagSet.
func addDeckFlags(fs *flag.FlagSet, f *deckFlags) {
	fs.StringVarP(&f.service, "service", "s", "", "service type: sunday, midweek")
	fs.StringVar(&f.notice, "notice", "", "intro slide notice (overrides the service default)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory")
	fs.StringVarP(&f.name, "name", "n", "", "deck file name without extension")
	fs.BoolVar(&f.html, "html", false, "write the HTML deck alongside the PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write the HTML deck only, skip PDF")
}

// buildGenerateFlagSet declares the generate/watch flags on a new FlagSet.
func buildGenerateFlagSet(name string, f *generateFlags) *flag.FlagSet {
	fs := newFlagSet(name)
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF rendering timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.yes, "yes", "y", false, "keep reserved labels without asking")
	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.template)
	addDeckFlags(fs, &f.deck)
	addOutputFlags(fs, &f.output)
	return fs
}

// parseGenerateFlags parses generate (or watch) flags and returns positional args.
func parseGenerateFlags(name string, args []string) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := buildGenerateFlagSet(name, f)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	f.output.nameSet = fs.Changed("name")
	return f, fs.Args(), nil
}

// parseInspectFlags parses inspect flags and returns positional args.
func parseInspectFlags(args []string) (*inspectFlags, []string, error) {
	f := &inspectFlags{}
	fs := newFlagSet("inspect")
	fs.BoolVar(&f.slides, "slides", false, "print the slide table instead of YAML blocks")
	addCommonFlags(fs, &f.common)
	addDeckFlags(fs, &f.deck)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTitleFlags parses title flags and returns positional args.
func parseTitleFlags(args []string) (*titleFlags, []string, error) {
	f := &titleFlags{}
	fs := newFlagSet("title")
	fs.StringVarP(&f.file, "file", "f", "", "text file holding the song name")
	fs.IntVarP(&f.line, "line", "l", 0, "1-based line number to turn into a title")
	fs.BoolVarP(&f.write, "write", "w", false, "rewrite the file in place")
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	f := &doctorFlags{}
	fs := newFlagSet("doctor")
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.template)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, fs.Arg(0))
	}
	return f, nil
}

// mergeTemplateFlags applies template flags over cfg (CLI wins).
func mergeTemplateFlags(f templateFlags, cfg *config.Config) {
	if f.name != "" {
		cfg.Template.Name = f.name
	}
	if f.assetPath != "" {
		cfg.Template.BasePath = f.assetPath
	}
}

// mergeGenerateFlags applies generate flags over cfg (CLI wins).
func mergeGenerateFlags(f *generateFlags, cfg *config.Config) {
	mergeTemplateFlags(f.template, cfg)
	if f.deck.service != "" {
		cfg.Service.Default = f.deck.service
	}
	if f.output.dir != "" {
		cfg.Output.DefaultDir = f.output.dir
	}
	if f.timeout != "" {
		cfg.Render.Timeout = f.timeout
	}
	if f.output.html {
		cfg.Render.HTML = true
	}
	if f.yes {
		cfg.Labels.Policy = config.LabelPolicyIgnore
	}
}
