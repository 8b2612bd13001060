package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	slidemaker "github.com/alnah/go-slidemaker"
	"github.com/alnah/go-slidemaker/internal/config"
)

// newTestJob returns a job writing into a temp dir with the given policy.
func newTestJob(t *testing.T, policy string) *deckJob {
	t.Helper()

	return &deckJob{
		inputPath:   "service.txt",
		service:     slidemaker.ServiceSunday,
		outputDir:   t.TempDir(),
		policy:      policy,
		interactive: true,
		quiet:       true,
	}
}

// ---------------------------------------------------------------------------
// TestGenerateDeck - Output files and naming
// ---------------------------------------------------------------------------

func TestGenerateDeck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		edit         func(j *deckJob)
		wantPDF      string
		wantHTML     string
		wantHTMLOnly bool
	}{
		{
			name:    "default sunday name",
			wantPDF: "Sunday 08 01 2023.pdf",
		},
		{
			name:    "default midweek name",
			edit:    func(j *deckJob) { j.service = slidemaker.ServiceMidweek },
			wantPDF: "Midweek 11 01 2023.pdf",
		},
		{
			name:    "custom date format",
			edit:    func(j *deckJob) { j.dateFormat = "iso" },
			wantPDF: "Sunday 2023-01-08.pdf",
		},
		{
			name:    "explicit name is sanitized",
			edit:    func(j *deckJob) { j.name, j.nameSet = "Easter: 2023/04", true },
			wantPDF: "Easter 202304.pdf",
		},
		{
			name:     "html sidecar",
			edit:     func(j *deckJob) { j.html = true },
			wantPDF:  "Sunday 08 01 2023.pdf",
			wantHTML: "Sunday 08 01 2023.html",
		},
		{
			name:         "html only",
			edit:         func(j *deckJob) { j.htmlOnly = true },
			wantHTML:     "Sunday 08 01 2023.html",
			wantHTMLOnly: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := newTestJob(t, config.LabelPolicyPrompt)
			if tt.edit != nil {
				tt.edit(job)
			}
			conv := &mockConverter{}
			env, _, _ := newTestEnv(conv)

			out, err := generateDeck(context.Background(), conv, "la la\n\nli li", job, env)
			if err != nil {
				t.Fatalf("generateDeck() error: %v", err)
			}

			if tt.wantPDF != "" {
				if out.PDFPath != filepath.Join(job.outputDir, tt.wantPDF) {
					t.Errorf("PDFPath = %q, want %q", out.PDFPath, tt.wantPDF)
				}
				if _, err := os.Stat(out.PDFPath); err != nil {
					t.Errorf("PDF not written: %v", err)
				}
			} else if out.PDFPath != "" {
				t.Errorf("PDFPath = %q, want none", out.PDFPath)
			}

			if tt.wantHTML != "" {
				if out.HTMLPath != filepath.Join(job.outputDir, tt.wantHTML) {
					t.Errorf("HTMLPath = %q, want %q", out.HTMLPath, tt.wantHTML)
				}
				if _, err := os.Stat(out.HTMLPath); err != nil {
					t.Errorf("HTML not written: %v", err)
				}
			} else if out.HTMLPath != "" {
				t.Errorf("HTMLPath = %q, want none", out.HTMLPath)
			}

			calls := conv.calls()
			if len(calls) != 1 {
				t.Fatalf("Convert called %d times, want 1", len(calls))
			}
			if calls[0].HTMLOnly != tt.wantHTMLOnly {
				t.Errorf("Input.HTMLOnly = %v, want %v", calls[0].HTMLOnly, tt.wantHTMLOnly)
			}
			if calls[0].Title != out.Name {
				t.Errorf("Input.Title = %q, want deck name %q", calls[0].Title, out.Name)
			}
			// intro, two lyric pairs, ending
			if out.Slides != 4 {
				t.Errorf("Slides = %d, want 4", out.Slides)
			}
		})
	}
}

func TestGenerateDeck_BlankName(t *testing.T) {
	t.Parallel()

	job := newTestJob(t, config.LabelPolicyPrompt)
	job.name, job.nameSet = "  ", true
	conv := &mockConverter{}
	env, _, _ := newTestEnv(conv)

	_, err := generateDeck(context.Background(), conv, "la la", job, env)
	if !errors.Is(err, slidemaker.ErrMissingFileName) {
		t.Errorf("error = %v, want ErrMissingFileName", err)
	}
	if len(conv.calls()) != 0 {
		t.Error("Convert should not run without a file name")
	}
}

func TestGenerateDeck_CreatesOutputDir(t *testing.T) {
	t.Parallel()

	job := newTestJob(t, config.LabelPolicyPrompt)
	job.outputDir = filepath.Join(job.outputDir, "a", "b")
	conv := &mockConverter{}
	env, _, _ := newTestEnv(conv)

	out, err := generateDeck(context.Background(), conv, "la la", job, env)
	if err != nil {
		t.Fatalf("generateDeck() error: %v", err)
	}
	if _, err := os.Stat(out.PDFPath); err != nil {
		t.Errorf("PDF not written into nested dir: %v", err)
	}
}

func TestGenerateDeck_ConvertErrorsGetHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"layout missing", slidemaker.ErrTemplateLayoutMissing, "slidemaker doctor --template default"},
		{"timeout", context.DeadlineExceeded, "--timeout"},
		{"empty document", slidemaker.ErrEmptyDocument, "slidemaker generate -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := &mockConverter{err: tt.err}
			env, _, _ := newTestEnv(conv)

			_, err := generateDeck(context.Background(), conv, "la la", newTestJob(t, config.LabelPolicyPrompt), env)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if !strings.Contains(err.Error(), tt.wantHint) {
				t.Errorf("error %q should contain hint %q", err, tt.wantHint)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateDeck_ReservedLabels - Label policies
// ---------------------------------------------------------------------------

func TestGenerateDeck_ReservedLabels(t *testing.T) {
	t.Parallel()

	const text = "Chorus\nAmazing grace\n\nV2\nHow sweet"

	tests := []struct {
		name        string
		policy      string
		interactive bool
		answer      string
		wantErr     error
		wantPrompt  bool
	}{
		{"ignore policy", config.LabelPolicyIgnore, true, "", nil, false},
		{"fail policy", config.LabelPolicyFail, true, "", slidemaker.ErrReservedLabelsPresent, false},
		{"prompt answered yes", config.LabelPolicyPrompt, true, "y\n", nil, true},
		{"prompt answered YES", config.LabelPolicyPrompt, true, "YES\n", nil, true},
		{"prompt answered no", config.LabelPolicyPrompt, true, "n\n", ErrLabelsRefused, true},
		{"prompt without answer", config.LabelPolicyPrompt, true, "", ErrLabelsRefused, true},
		{"prompt not interactive", config.LabelPolicyPrompt, false, "y\n", slidemaker.ErrReservedLabelsPresent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := newTestJob(t, tt.policy)
			job.interactive = tt.interactive
			conv := &mockConverter{}
			env, _, stderr := newTestEnv(conv)
			env.Stdin = strings.NewReader(tt.answer)

			out, err := generateDeck(context.Background(), conv, text, job, env)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if len(conv.calls()) != 0 {
					t.Error("Convert should not run when labels are refused")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if strings.Join(out.Labels, ",") != "Chorus,V2" {
					t.Errorf("Labels = %v, want [Chorus V2]", out.Labels)
				}
			}

			prompted := strings.Contains(stderr.String(), "[y/N]")
			if prompted != tt.wantPrompt {
				t.Errorf("prompted = %v, want %v", prompted, tt.wantPrompt)
			}
		})
	}
}

func TestGenerateDeck_FailPolicyKeepsLabels(t *testing.T) {
	t.Parallel()

	conv := &mockConverter{}
	env, _, _ := newTestEnv(conv)

	_, err := generateDeck(context.Background(), conv, "verse\nla", newTestJob(t, config.LabelPolicyFail), env)

	var labelsErr *slidemaker.ReservedLabelsError
	if !errors.As(err, &labelsErr) {
		t.Fatalf("error = %v, want *ReservedLabelsError", err)
	}
	if len(labelsErr.Labels) != 1 || labelsErr.Labels[0] != "verse" {
		t.Errorf("Labels = %v, want [verse]", labelsErr.Labels)
	}
	if !strings.Contains(err.Error(), "--yes") {
		t.Errorf("error %q should hint at --yes", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewDeckJob / TestReadInput
// ---------------------------------------------------------------------------

func TestNewDeckJob(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Service.Default = "midweek"
	cfg.Service.MidweekNotice = "Tonight at 7"
	cfg.Output.DefaultDir = "out"
	cfg.Render.HTML = true

	flags := &generateFlags{}
	flags.output.name = "Custom"
	flags.output.nameSet = true

	job, err := newDeckJob("-", flags, cfg)
	if err != nil {
		t.Fatalf("newDeckJob() error: %v", err)
	}
	if job.service != slidemaker.ServiceMidweek {
		t.Errorf("service = %v, want midweek", job.service)
	}
	if job.notice != "Tonight at 7" {
		t.Errorf("notice = %q, want config notice", job.notice)
	}
	if job.interactive {
		t.Error("stdin input must not be interactive")
	}
	if !job.html || job.outputDir != "out" || job.name != "Custom" || !job.nameSet {
		t.Errorf("job = %+v", job)
	}

	flags.deck.notice = "Flag notice"
	job, err = newDeckJob("in.txt", flags, cfg)
	if err != nil {
		t.Fatalf("newDeckJob() error: %v", err)
	}
	if job.notice != "Flag notice" {
		t.Errorf("notice = %q, want flag notice", job.notice)
	}
	if !job.interactive {
		t.Error("file input should be interactive")
	}
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		got, err := readInput("-", strings.NewReader("la la"))
		if err != nil || got != "la la" {
			t.Errorf("readInput(-) = %q, %v", got, err)
		}
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		got, err := readInput(writeInput(t, "li li"), nil)
		if err != nil || got != "li li" {
			t.Errorf("readInput(file) = %q, %v", got, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := readInput(filepath.Join(t.TempDir(), "nope.txt"), nil)
		if !errors.Is(err, ErrReadInput) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want ErrReadInput wrapping os.ErrNotExist", err)
		}
	})
}

func TestPrintDeckOutput(t *testing.T) {
	t.Parallel()

	out := &deckOutput{ID: "abc", PDFPath: "d/x.pdf", HTMLPath: "d/x.html", Slides: 5, Labels: []string{"V1"}}

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		printDeckOutput(&buf, &deckJob{quiet: true}, out, "default")
		if buf.Len() != 0 {
			t.Errorf("quiet output = %q", buf.String())
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		printDeckOutput(&buf, &deckJob{verbose: true}, out, "plain")
		for _, want := range []string{"Generated d/x.pdf (5 slides)", "Generated d/x.html", "abc", "plain", "1 kept"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output should contain %q, got %q", want, buf.String())
			}
		}
	})
}
