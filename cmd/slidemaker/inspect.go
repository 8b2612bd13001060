package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	slidemaker "github.com/alnah/go-slidemaker"
	"github.com/alnah/go-slidemaker/internal/hints"
	"github.com/alnah/go-slidemaker/internal/yamlutil"
)

// inspectReport is the YAML document printed by inspect.
type inspectReport struct {
	Service        string      `yaml:"service"`
	ReservedLabels []string    `yaml:"reservedLabels,omitempty"`
	Blocks         []blockView `yaml:"blocks"`
}

// blockView is one block as printed by inspect. Multi-line texts are split
// into lines so the YAML stays readable.
type blockView struct {
	Kind    string   `yaml:"kind"`
	Layout  string   `yaml:"layout"`
	Content string   `yaml:"content,omitempty"`
	Top     []string `yaml:"top,omitempty"`
	Bottom  []string `yaml:"bottom,omitempty"`
}

// runInspect prints the block sequence of an order of service without
// rendering anything.
func runInspect(args []string, env *Environment) error {
	flags, positional, err := parseInspectFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForEmptyInput())
	}

	cfg, err := loadSettings(flags.common.config)
	if err != nil {
		return err
	}
	if flags.deck.service != "" {
		cfg.Service.Default = flags.deck.service
	}
	service, err := slidemaker.ParseServiceType(cfg.Service.Default)
	if err != nil {
		return err
	}

	text, err := readInput(positional[0], env.Stdin)
	if err != nil {
		return err
	}
	if slidemaker.PrepareText(text) == "" {
		return fmt.Errorf("%w%s", slidemaker.ErrEmptyDocument, hints.ForEmptyInput())
	}

	notice := flags.deck.notice
	if notice == "" {
		notice = noticeFor(cfg, service)
	}
	if notice == "" {
		notice = service.DefaultNotice()
	}

	blocks := slidemaker.BuildBlocks(text, notice)
	labels := slidemaker.ScanReservedLabels(text)

	if flags.slides {
		return printSlideTable(env.Stdout, slidemaker.Slides(blocks))
	}
	return yamlutil.Encode(env.Stdout, newInspectReport(service, blocks, labels))
}

// newInspectReport converts blocks to their printed form.
func newInspectReport(service slidemaker.ServiceType, blocks []slidemaker.Block, labels []string) inspectReport {
	views := make([]blockView, len(blocks))
	for i, b := range blocks {
		views[i] = blockView{
			Kind:    b.Kind.String(),
			Layout:  b.Slide().Layout,
			Content: b.Content,
			Top:     splitLines(b.Top),
			Bottom:  splitLines(b.Bottom),
		}
	}
	return inspectReport{Service: service.String(), ReservedLabels: labels, Blocks: views}
}

// splitLines splits s on newlines; "" gives nil.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// printSlideTable prints one row per slide: index, layout and placeholder
// texts in index order, newlines shown as " / ".
func printSlideTable(w io.Writer, slides []slidemaker.Slide) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tLAYOUT\tPLACEHOLDERS")

	for i, s := range slides {
		idxs := make([]int, 0, len(s.Placeholders))
		for idx := range s.Placeholders {
			idxs = append(idxs, idx)
		}
		sort.Ints(idxs)

		parts := make([]string, len(idxs))
		for j, idx := range idxs {
			text := strings.ReplaceAll(s.Placeholders[idx], "\n", " / ")
			parts[j] = strconv.Itoa(idx) + "=" + strconv.Quote(text)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, s.Layout, strings.Join(parts, " "))
	}

	return tw.Flush()
}
