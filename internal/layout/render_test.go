package layout

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jacobconley/mustache-layout/internal/pipeline"
)

func TestRenderEndToEnd(t *testing.T) {
	fs := testFs(t, map[string]string{
		"outer.mustache": "<h1>{{page.title}}</h1>{{>yield}}",
		"page.mustache":  "Hello {{name}}",
		"page.toml":      "name = \"World\"\n",
	})

	opts := testOptions(fs)
	opts.Vars = map[string]interface{}{"title": "Site"}
	outer, err := Load("outer.mustache", opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	entry := pipeline.NewBuffer("page.mustache", []byte("Hello {{name}}"))
	rendered, err := outer.Done(nil).Render(entry)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !rendered {
		t.Fatal("Render() should accept a template entry")
	}

	want := "<h1>Site</h1>Hello World"
	if got := string(entry.Contents); got != want {
		t.Errorf("rendered output = %q, want %q", got, want)
	}
	if entry.Path != "page.htm" {
		t.Errorf("entry path = %q, want %q", entry.Path, "page.htm")
	}
}

func TestRenderComposesThroughEveryLevel(t *testing.T) {
	fs := testFs(t, map[string]string{
		"a.mustache": "A[{{>yield}}]",
		"b.mustache": "B({{>yield}})",
	})

	a := mustLoad(t, fs, "a.mustache")
	chain := a.Wrap(mustLoad(t, fs, "b.mustache"))

	entry := pipeline.NewBuffer("leaf.mustache", []byte("leaf {{n}}"))
	renderer := chain.Done(&RenderOptions{
		Vars: map[string]interface{}{"n": 7},
	})
	if _, err := renderer.Render(entry); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// Yield must receive the already-expanded inner output at every level,
	// never raw template text.
	want := "A[B(leaf 7)]"
	if got := string(entry.Contents); got != want {
		t.Errorf("rendered output = %q, want %q", got, want)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	fs := testFs(t, map[string]string{
		"outer.mustache": "<o>{{>yield}}</o>",
		"page.toml":      "name = \"World\"\n",
	})

	outer := mustLoad(t, fs, "outer.mustache")
	renderer := outer.Done(nil)

	source := []byte("Hello {{name}}")
	first := pipeline.NewBuffer("page.mustache", append([]byte(nil), source...))
	second := pipeline.NewBuffer("page.mustache", append([]byte(nil), source...))

	if _, err := renderer.Render(first); err != nil {
		t.Fatalf("first Render() error: %v", err)
	}
	if _, err := renderer.Render(second); err != nil {
		t.Fatalf("second Render() error: %v", err)
	}

	if !bytes.Equal(first.Contents, second.Contents) {
		t.Errorf("renders differ: %q vs %q", first.Contents, second.Contents)
	}
}

func TestRenderScopeIsolation(t *testing.T) {
	fs := testFs(t, map[string]string{
		"outer.mustache": "[{{name}}]{{>yield}}",
		"page.toml":      "name = \"World\"\n",
	})

	outer := mustLoad(t, fs, "outer.mustache")
	entry := pipeline.NewBuffer("page.mustache", []byte("Hello {{name}}"))
	if _, err := outer.Done(nil).Render(entry); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// The leaf's variable is not visible under its flat name in the outer
	// template; it stays reachable only through the leaf's scope key.
	want := "[]Hello World"
	if got := string(entry.Contents); got != want {
		t.Errorf("rendered output = %q, want %q", got, want)
	}
}

func TestRenderLeafScopeVisibleToWrappingTemplate(t *testing.T) {
	fs := testFs(t, map[string]string{
		"outer.mustache": "<title>{{page.name}}</title>{{>yield}}",
		"page.toml":      "name = \"World\"\n",
	})

	outer := mustLoad(t, fs, "outer.mustache")
	entry := pipeline.NewBuffer("page.mustache", []byte("body"))
	if _, err := outer.Done(nil).Render(entry); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := "<title>World</title>body"
	if got := string(entry.Contents); got != want {
		t.Errorf("rendered output = %q, want %q", got, want)
	}
}

func TestRenderPerEntryVarsWinOverSidecar(t *testing.T) {
	fs := testFs(t, map[string]string{
		"outer.mustache": "{{>yield}}",
		"page.toml":      "name = \"sidecar\"\n",
	})

	outer := mustLoad(t, fs, "outer.mustache")
	renderer := outer.Done(&RenderOptions{
		Vars: map[string]interface{}{"name": "override"},
	})

	entry := pipeline.NewBuffer("page.mustache", []byte("Hello {{name}}"))
	if _, err := renderer.Render(entry); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := string(entry.Contents); got != "Hello override" {
		t.Errorf("rendered output = %q, want %q", got, "Hello override")
	}
}

func TestRenderMissingYieldAtLeaf(t *testing.T) {
	fs := testFs(t, map[string]string{"outer.mustache": "{{>yield}}"})

	outer := mustLoad(t, fs, "outer.mustache")
	entry := pipeline.NewBuffer("page.mustache", []byte("a{{>yield}}b"))

	_, err := outer.Done(nil).Render(entry)
	if err == nil {
		t.Fatal("rendering a yielding leaf with nothing wrapped should fail")
	}

	var layoutErr *Error
	if !errors.As(err, &layoutErr) {
		t.Fatalf("error should be *Error, got %T", err)
	}
	if layoutErr.Type != MissingYield {
		t.Errorf("error type = %v, want MissingYield", layoutErr.Type)
	}
}

func TestRenderSkipsNonRenderableEntries(t *testing.T) {
	fs := testFs(t, map[string]string{"outer.mustache": "{{>yield}}"})
	renderer := mustLoad(t, fs, "outer.mustache").Done(nil)

	tests := []struct {
		name  string
		entry *pipeline.Entry
	}{
		{"placeholder", &pipeline.Entry{Path: "page.mustache"}},
		{"partial source", pipeline.NewBuffer("_header.mustache", []byte("x"))},
		{"non-template extension", pipeline.NewBuffer("style.css", []byte("x"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origPath := tt.entry.Path
			origContents := append([]byte(nil), tt.entry.Contents...)

			rendered, err := renderer.Render(tt.entry)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if rendered {
				t.Error("entry should not be renderable")
			}
			if tt.entry.Path != origPath {
				t.Errorf("path rewritten to %q, should stay %q", tt.entry.Path, origPath)
			}
			if !bytes.Equal(tt.entry.Contents, origContents) {
				t.Error("contents must stay untouched for skipped entries")
			}
		})
	}
}

func TestRenderRejectsStreams(t *testing.T) {
	fs := testFs(t, map[string]string{"outer.mustache": "{{>yield}}"})
	renderer := mustLoad(t, fs, "outer.mustache").Done(nil)

	entry := &pipeline.Entry{
		Path:   "page.mustache",
		Stream: strings.NewReader("streamed body"),
	}

	_, err := renderer.Render(entry)
	if err == nil {
		t.Fatal("streamed entries should be rejected")
	}

	var layoutErr *Error
	if !errors.As(err, &layoutErr) {
		t.Fatalf("error should be *Error, got %T", err)
	}
	if layoutErr.Type != UnsupportedInput {
		t.Errorf("error type = %v, want UnsupportedInput", layoutErr.Type)
	}
}

func TestRenderOutputNaming(t *testing.T) {
	fs := testFs(t, map[string]string{"outer.mustache": "{{>yield}}"})
	outer := mustLoad(t, fs, "outer.mustache")

	tests := []struct {
		name     string
		opts     *RenderOptions
		wantPath string
	}{
		{"defaults", nil, "pages/about.htm"},
		{"custom extension", &RenderOptions{OutputExt: ".html"}, "pages/about.html"},
		{"custom name", &RenderOptions{OutputName: "index"}, "pages/index.htm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := pipeline.NewBuffer("pages/about.mustache", []byte("body"))
			if _, err := outer.Done(tt.opts).Render(entry); err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if entry.Path != tt.wantPath {
				t.Errorf("entry path = %q, want %q", entry.Path, tt.wantPath)
			}
		})
	}
}

func TestRenderDisabledScopeRemovedFromBindings(t *testing.T) {
	fs := testFs(t, map[string]string{
		"outer.mustache": "{{outer.x}}|{{>yield}}",
	})

	opts := testOptions(fs)
	opts.NoScope = true
	opts.Vars = map[string]interface{}{"x": "hidden"}
	outer, err := Load("outer.mustache", opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	entry := pipeline.NewBuffer("page.mustache", []byte("{{outer.x}}"))
	if _, err := outer.Done(nil).Render(entry); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// Neither direction exposes a disabled scope.
	if got := string(entry.Contents); got != "|" {
		t.Errorf("rendered output = %q, want %q", got, "|")
	}
}
