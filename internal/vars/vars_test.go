package vars

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestTOMLPathFor(t *testing.T) {
	tests := []struct {
		name         string
		templatePath string
		want         string
	}{
		{"simple", "page.mustache", "page.toml"},
		{"with directory", "layouts/main.mustache", "layouts/main.toml"},
		{"no extension", "page", "page.toml"},
		{"dotted stem", "v1.2/page.mustache", "v1.2/page.toml"},
	}

	loader := TOML()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loader.PathFor(tt.templatePath); got != tt.want {
				t.Errorf("PathFor(%q) = %q, want %q", tt.templatePath, got, tt.want)
			}
		})
	}
}

func TestLoadSidecar(t *testing.T) {
	fs := afero.NewMemMapFs()
	sidecar := "pages/index.toml"
	body := "title = \"Home\"\ncount = 3\ndraft = false\n\n[author]\nname = \"jc\"\n"
	if err := afero.WriteFile(fs, sidecar, []byte(body), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := TOML().Load(fs, "pages/index.mustache")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := map[string]interface{}{
		"title": "Home",
		"count": int64(3),
		"draft": false,
		"author": map[string]interface{}{
			"name": "jc",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingSidecarYieldsEmptyBindings(t *testing.T) {
	fs := afero.NewMemMapFs()

	got, err := TOML().Load(fs, "pages/index.mustache")
	if err != nil {
		t.Fatalf("Load() error for missing sidecar: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want empty bindings", got)
	}
}

func TestLoadInvalidSidecarIsFatal(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "page.toml", []byte("title = \n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := TOML().Load(fs, "page.mustache")
	if err == nil {
		t.Fatal("Load() should fail on malformed sidecar")
	}

	var varsErr *VarsError
	if !errors.As(err, &varsErr) {
		t.Fatalf("error should be *VarsError, got %T", err)
	}
	if varsErr.Type != VarsParseFailed {
		t.Errorf("error type = %v, want VarsParseFailed", varsErr.Type)
	}
	if varsErr.File != "page.toml" {
		t.Errorf("error file = %q, want %q", varsErr.File, "page.toml")
	}
}
