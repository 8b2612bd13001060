package assets

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

// Layout names every built-in set must define.
var builtinLayouts = []string{
	"Initial Slide", "Welcome", "Communion", "Message", "Close",
	"Contribution", "Contribution Details", "Song Title", "Song Lyrics", "Ending",
}

func TestEmbeddedLoader_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		setName string
		wantErr error
	}{
		{name: "default set", setName: "default"},
		{name: "plain set", setName: "plain"},
		{name: "nonexistent", setName: "nonexistent-set-xyz", wantErr: ErrTemplateSetNotFound},
		{name: "empty name", setName: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", setName: "../secret", wantErr: ErrInvalidAssetName},
		{name: "backslash traversal", setName: "..\\secret", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts, err := loader.LoadTemplateSet(tt.setName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplateSet(%q) error = %v, want %v", tt.setName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplateSet(%q) unexpected error: %v", tt.setName, err)
			}
			if ts.Name != tt.setName {
				t.Errorf("Name = %q, want %q", ts.Name, tt.setName)
			}
			if ts.Dir != "" {
				t.Errorf("Dir = %q, want empty for embedded set", ts.Dir)
			}
			if missing := ts.MissingLayouts(builtinLayouts); len(missing) > 0 {
				t.Errorf("set %q missing layouts %v", tt.setName, missing)
			}
			if ts.CSS == "" {
				t.Errorf("set %q has no stylesheet", tt.setName)
			}
		})
	}
}

func TestEmbeddedLoader_DefaultPlaceholders(t *testing.T) {
	t.Parallel()

	ts, err := LoadTemplateSet(DefaultTemplateSetName)
	if err != nil {
		t.Fatalf("LoadTemplateSet(default) error: %v", err)
	}

	for _, l := range ts.Layouts {
		for _, idx := range l.Placeholders {
			marker := "{{.Ph " + strconv.Itoa(idx) + "}}"
			if !strings.Contains(l.HTML, marker) {
				t.Errorf("layout %q declares placeholder %d but its HTML has no %s", l.Name, idx, marker)
			}
		}
	}
}

func TestListTemplateSets(t *testing.T) {
	t.Parallel()

	names, err := ListTemplateSets()
	if err != nil {
		t.Fatalf("ListTemplateSets() error: %v", err)
	}
	if strings.Join(names, ",") != "default,plain" {
		t.Errorf("ListTemplateSets() = %v, want [default plain]", names)
	}
}
