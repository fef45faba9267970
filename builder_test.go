package htgen

// Notes:
// - Every test builds a real site in t.TempDir(): fragments under htgen/,
//   auxiliary documents under aux/, output under out/.
// - Element text is compared after parsing the output back, so serializer
//   details (escaping, the newline after <pre>) do not leak into assertions.

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const testSkeleton = `<!DOCTYPE html>
<html><head><title>Eureka - $(TITLE)</title></head>
<body>
<h1>$(TITLE)</h1>
<div id="content"><div id="wikitext"><p>SKELETON SLOT</p></div></div>
<footer>$(TITLE) page</footer>
</body></html>`

// testSite is a site laid out on disk.
type testSite struct {
	root string
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	s := &testSite{root: t.TempDir()}
	s.write(t, "htgen/index.html", `<div class="page"><p>Welcome</p></div>`)
	s.write(t, "htgen/Main_About.html", `<div class="page"><p>About Eureka</p></div>`)
	return s
}

func (s *testSite) path(rel string) string { return filepath.Join(s.root, filepath.FromSlash(rel)) }

func (s *testSite) write(t *testing.T, rel, content string) {
	t.Helper()
	path := s.path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func (s *testSite) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(s.path(rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func (s *testSite) layout() Layout {
	return Layout{FragmentRoot: s.path("htgen"), AuxRoot: s.path("aux")}
}

func (s *testSite) registry(t *testing.T, entries ...PageEntry) *Registry {
	t.Helper()
	reg, err := NewRegistry(entries, s.layout())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg
}

func (s *testSite) builder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	b, err := NewBuilder(testSkeleton, NewDirWriter(s.path("out")), opts...)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	return b
}

func (s *testSite) outputs(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(s.path("out"))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// textByID returns the text content of the element with the given id.
func textByID(t *testing.T, doc, id string) string {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	if found == nil {
		t.Fatalf("no element with id=%q in:\n%s", id, doc)
	}

	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(found)
	return sb.String()
}

// ---------------------------------------------------------------------------
// TestNewBuilder - Skeleton validation
// ---------------------------------------------------------------------------

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		skeleton string
		opts     []Option
		wantErr  error
	}{
		{"valid skeleton", testSkeleton, nil, nil},
		{"missing slot", `<html><body><div id="main"></div></body></html>`, nil, ErrMissingSlot},
		{"duplicate slot", `<div id="wikitext"></div><div id="wikitext"></div>`, nil, ErrDuplicateSlot},
		{"custom slot id", `<main id="content"></main>`, []Option{WithSlotID("content")}, nil},
		{"custom slot id missing", testSkeleton, []Option{WithSlotID("main")}, ErrMissingSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBuilder(tt.skeleton, NewDirWriter(t.TempDir()), tt.opts...)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("NewBuilder() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBuilder() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("nil writer", func(t *testing.T) {
		t.Parallel()

		if _, err := NewBuilder(testSkeleton, nil); err == nil {
			t.Error("NewBuilder(nil writer) expected error")
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuild - Composition properties
// ---------------------------------------------------------------------------

func TestBuild_Composes(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	reg := s.registry(t, PageEntry{File: "index.html"}, PageEntry{File: "Main_About.html"})

	report, err := s.builder(t).Build(context.Background(), reg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if report.Written() != 2 || len(report.Pages) != 2 {
		t.Fatalf("report = %+v, want 2 pages written", report)
	}

	about := s.read(t, "out/Main_About.html")
	for _, want := range []string{
		"<title>Eureka - About</title>",
		"<h1>About</h1>",
		"<footer>About page</footer>",
		`<div id="content"><div class="page"><p>About Eureka</p></div></div>`,
	} {
		if !strings.Contains(about, want) {
			t.Errorf("Main_About.html missing %q in:\n%s", want, about)
		}
	}

	index := s.read(t, "out/index.html")
	if !strings.Contains(index, "<title>Eureka - MainPage</title>") {
		t.Errorf("index.html should use the fallback title:\n%s", index)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	s.write(t, "htgen/Main_Changes2.0.1.html", `<div class="changes"><h2>Changes</h2></div>`)
	s.write(t, "aux/changelogs/2.0.1.md", "## Fixes\n\n- crash on save\n\n```\nline  kept\n```\n")
	reg := s.registry(t,
		PageEntry{File: "index.html"},
		PageEntry{File: "Main_About.html"},
		PageEntry{File: "Main_Changes2.0.1.html"},
	)

	read := func() map[string]string {
		out := make(map[string]string)
		for _, name := range s.outputs(t) {
			out[name] = s.read(t, "out/"+name)
		}
		return out
	}

	if _, err := s.builder(t).Build(context.Background(), reg); err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	first := read()

	if _, err := s.builder(t).Build(context.Background(), reg); err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	second := read()

	if len(first) != 3 {
		t.Fatalf("first build wrote %d files, want 3", len(first))
	}
	for name, content := range first {
		if second[name] != content {
			t.Errorf("%s differs between builds", name)
		}
	}
}

func TestBuild_NoPlaceholderLeft(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	s.write(t, "htgen/Main_Help.html", `<div><p>Mentions $(TITLE) in its body</p></div>`)
	reg := s.registry(t, PageEntry{File: "index.html"}, PageEntry{File: "Main_About.html"}, PageEntry{File: "Main_Help.html"})

	if _, err := s.builder(t).Build(context.Background(), reg); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, name := range s.outputs(t) {
		if doc := s.read(t, "out/"+name); strings.Contains(doc, "$(TITLE)") {
			t.Errorf("%s still contains the placeholder:\n%s", name, doc)
		}
	}
	if doc := s.read(t, "out/Main_Help.html"); !strings.Contains(doc, "Mentions Help in its body") {
		t.Errorf("placeholder in fragment should be substituted too:\n%s", doc)
	}
}

func TestBuild_SlotReplacedWholesale(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	reg := s.registry(t, PageEntry{File: "index.html"}, PageEntry{File: "Main_About.html"})

	if _, err := s.builder(t).Build(context.Background(), reg); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	about := s.read(t, "out/Main_About.html")
	if strings.Contains(about, "SKELETON SLOT") || strings.Contains(about, `id="wikitext"`) {
		t.Errorf("skeleton slot markup survived:\n%s", about)
	}
	if !strings.Contains(textByID(t, about, "content"), "About Eureka") {
		t.Errorf("slot ancestry should hold the page content:\n%s", about)
	}
	// The second page must not see the first page's content.
	if strings.Contains(about, "Welcome") {
		t.Errorf("content of index.html leaked into Main_About.html:\n%s", about)
	}
}

// ---------------------------------------------------------------------------
// TestBuild - Injection properties
// ---------------------------------------------------------------------------

func TestBuild_ChangelogResolution(t *testing.T) {
	t.Parallel()

	t.Run("version document is appended", func(t *testing.T) {
		t.Parallel()

		s := newTestSite(t)
		s.write(t, "htgen/Main_Changes2.0.1.html", `<div class="changes"><h2>Release notes</h2></div>`)
		s.write(t, "aux/changelogs/2.0.1.md", "- Fixed the 2.0.1 crash\n")
		reg := s.registry(t, PageEntry{File: "Main_Changes2.0.1.html"})

		p, _ := reg.Lookup("Main_Changes2.0.1")
		if want := s.path("aux/changelogs/2.0.1.md"); p.Binding.Source != want || p.Binding.Version != "2.0.1" {
			t.Fatalf("binding = %+v, want source %s and version 2.0.1", p.Binding, want)
		}

		if _, err := s.builder(t).Build(context.Background(), reg); err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		doc := s.read(t, "out/Main_Changes2.0.1.html")
		if !strings.Contains(doc, "<li>Fixed the 2.0.1 crash</li>") {
			t.Errorf("changelog not appended:\n%s", doc)
		}
	})

	t.Run("missing version aborts without output", func(t *testing.T) {
		t.Parallel()

		s := newTestSite(t)
		s.write(t, "htgen/Main_Changes9.9.html", `<div class="changes"></div>`)
		reg := s.registry(t, PageEntry{File: "index.html"}, PageEntry{File: "Main_Changes9.9.html"})

		report, err := s.builder(t).Build(context.Background(), reg)
		if !errors.Is(err, ErrMissingChangelog) {
			t.Fatalf("Build() error = %v, want ErrMissingChangelog", err)
		}
		if !strings.Contains(err.Error(), "9.9") {
			t.Errorf("error should name the version: %v", err)
		}
		if report != nil {
			t.Errorf("report = %+v, want nil on structural error", report)
		}
		if out := s.outputs(t); len(out) != 0 {
			t.Errorf("outputs = %v, want none", out)
		}
	})
}

func TestBuild_MissingFragment(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	reg := s.registry(t, PageEntry{File: "index.html"}, PageEntry{File: "Docs_Gone.html"})

	_, err := s.builder(t).Build(context.Background(), reg)
	if !errors.Is(err, ErrMissingFragment) {
		t.Fatalf("Build() error = %v, want ErrMissingFragment", err)
	}
	if !strings.Contains(err.Error(), "Docs_Gone") {
		t.Errorf("error should name the page: %v", err)
	}
	if out := s.outputs(t); len(out) != 0 {
		t.Errorf("outputs = %v, want none", out)
	}
}

func TestBuild_TODOVerbatim(t *testing.T) {
	t.Parallel()

	todo := "  Editing:\n    - fix <sector> merge & split\n\tundo for *all* ops\n\n  Rendering:\n    - `sky` texture\n"

	s := newTestSite(t)
	s.write(t, "htgen/Main_TODO.html", `<div class="todo"><h2>TODO</h2><pre id="todo">placeholder</pre></div>`)
	s.write(t, "aux/TODO.txt", todo)
	reg := s.registry(t, PageEntry{
		File:   "Main_TODO.html",
		Inject: &InjectEntry{Mode: InjectReplace, Source: "TODO.txt"},
	})

	if _, err := s.builder(t).Build(context.Background(), reg); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	doc := s.read(t, "out/Main_TODO.html")
	if got := textByID(t, doc, "todo"); got != todo {
		t.Errorf("TODO text = %q, want %q", got, todo)
	}
	if strings.Contains(doc, "<em>all</em>") || strings.Contains(doc, "<code>") {
		t.Errorf("TODO text must not be rendered as markup:\n%s", doc)
	}
	if strings.Contains(doc, "placeholder") {
		t.Errorf("previous TODO content survived:\n%s", doc)
	}
}

func TestBuild_TODOWithNULByte(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	s.write(t, "htgen/Main_TODO.html", `<div class="todo"><pre id="todo">placeholder</pre></div>`)
	s.write(t, "aux/TODO.txt", "fix the\x00grid\n")
	reg := s.registry(t,
		PageEntry{File: "index.html"},
		PageEntry{File: "Main_TODO.html", Inject: &InjectEntry{Mode: InjectReplace, Source: "TODO.txt"}},
	)

	_, err := s.builder(t).Build(context.Background(), reg)
	if !errors.Is(err, ErrInvalidText) {
		t.Fatalf("Build() error = %v, want ErrInvalidText", err)
	}
	if !strings.Contains(err.Error(), "Main_TODO") {
		t.Errorf("error should name the page: %v", err)
	}
	if out := s.outputs(t); len(out) != 0 {
		t.Errorf("outputs = %v, want none", out)
	}
}

func TestBuild_MissingInjectionTarget(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	s.write(t, "htgen/Main_TODO.html", `<div class="todo"><pre id="list"></pre></div>`)
	s.write(t, "aux/TODO.txt", "item\n")
	reg := s.registry(t,
		PageEntry{File: "index.html"},
		PageEntry{File: "Main_TODO.html", Inject: &InjectEntry{Mode: InjectReplace, Source: "TODO.txt"}},
	)

	_, err := s.builder(t).Build(context.Background(), reg)
	if !errors.Is(err, ErrMissingTarget) {
		t.Fatalf("Build() error = %v, want ErrMissingTarget", err)
	}
	if out := s.outputs(t); len(out) != 0 {
		t.Errorf("outputs = %v, want none", out)
	}
}

func TestBuild_CreditsAppended(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	s.write(t, "htgen/Main_Credits.html", `<div class="credits"><h2>Legacy Credits</h2><p>Andrew Apted</p></div>`)
	s.write(t, "aux/AUTHORS.md", "## Contributors\n\n- Jane Doe\n- John Roe\n")
	reg := s.registry(t, PageEntry{
		File:   "Main_Credits.html",
		Inject: &InjectEntry{Mode: InjectAppend, Source: "AUTHORS.md"},
	})

	if _, err := s.builder(t).Build(context.Background(), reg); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	doc := s.read(t, "out/Main_Credits.html")
	legacy := strings.Index(doc, "Legacy Credits")
	jane := strings.Index(doc, "Jane Doe")
	if legacy < 0 || jane < 0 {
		t.Fatalf("both original and injected content expected:\n%s", doc)
	}
	if jane < legacy {
		t.Errorf("injected entry should follow the page content:\n%s", doc)
	}
	if !strings.Contains(doc, "<li>Jane Doe</li>") {
		t.Errorf("credits should be rendered as markup:\n%s", doc)
	}
	// Appended inside the container, not after it.
	if !strings.Contains(doc, "</ul>\n</div>") {
		t.Errorf("credits should be the last children of the container:\n%s", doc)
	}
}

func TestBuild_CreditsAppendedAfterTopLevelContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		before   string
	}{
		{"heading and paragraph", "<h2>Legacy Credits</h2>\n<p>Andrew Apted</p>", "Andrew Apted"},
		{"leading table", "<table><tr><td>Legacy Credits</td></tr></table>\n<p>Andrew Apted</p>", "Andrew Apted"},
		{"sole table", "<table><tr><td>Legacy Credits</td></tr></table>", "Legacy Credits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSite(t)
			s.write(t, "htgen/Main_Credits.html", tt.fragment)
			s.write(t, "aux/AUTHORS.md", "- Jane Doe\n")
			reg := s.registry(t, PageEntry{
				File:   "Main_Credits.html",
				Inject: &InjectEntry{Mode: InjectAppend, Source: "AUTHORS.md"},
			})

			if _, err := s.builder(t).Build(context.Background(), reg); err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			doc := s.read(t, "out/Main_Credits.html")
			before := strings.Index(doc, tt.before)
			jane := strings.Index(doc, "Jane Doe")
			if before < 0 || jane < 0 {
				t.Fatalf("both original and injected content expected:\n%s", doc)
			}
			if jane < before {
				t.Errorf("injected entry should follow %q:\n%s", tt.before, doc)
			}
		})
	}
}

func TestBuild_ContainerID(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	s.write(t, "htgen/Main_Credits.html", `<div class="page"><h2>Credits</h2><div id="people"><p>Legacy</p></div><p>Thanks</p></div>`)
	s.write(t, "aux/AUTHORS.md", "Jane Doe\n")
	reg := s.registry(t, PageEntry{File: "Main_Credits.html", Inject: &InjectEntry{Mode: InjectAppend, Source: "AUTHORS.md"}})

	if _, err := s.builder(t, WithContainerID("people")).Build(context.Background(), reg); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	doc := s.read(t, "out/Main_Credits.html")
	if got := textByID(t, doc, "people"); !strings.Contains(got, "Legacy") || !strings.Contains(got, "Jane Doe") {
		t.Errorf("people container text = %q, want legacy and injected content", got)
	}
}

// ---------------------------------------------------------------------------
// TestBuild - Degraded rendering, write failures, cancellation
// ---------------------------------------------------------------------------

// degradedRenderer always reports a best-effort rendering.
type degradedRenderer struct{}

func (degradedRenderer) Render(_ context.Context, content string) (string, error) {
	return "<pre>" + html.EscapeString(content) + "</pre>", fmt.Errorf("%w: test", ErrRenderDegraded)
}

func TestBuild_DegradedRenderingIsNotFatal(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	s := newTestSite(t)
	s.write(t, "htgen/Main_Changes1.0.html", `<div></div>`)
	s.write(t, "aux/changelogs/1.0.md", "odd <markup>")
	reg := s.registry(t, PageEntry{File: "index.html"}, PageEntry{File: "Main_Changes1.0.html"})

	report, err := s.builder(t, WithRenderer(degradedRenderer{}), WithLogger(logger)).Build(context.Background(), reg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := report.Degraded(); len(got) != 1 || got[0].Page.Key != "Main_Changes1.0" {
		t.Errorf("Degraded() = %+v, want the changelog page", got)
	}
	if doc := s.read(t, "out/Main_Changes1.0.html"); !strings.Contains(doc, "odd &lt;markup&gt;") {
		t.Errorf("best-effort rendering should be published:\n%s", doc)
	}
	if !strings.Contains(logs.String(), "degraded") {
		t.Errorf("expected a warning in logs, got %q", logs.String())
	}
}

// failingWriter fails for one file name and delegates the rest.
type failingWriter struct {
	OutputWriter
	fail string
}

func (w failingWriter) Write(name string, content []byte) error {
	if name == w.fail {
		return errors.New("disk full")
	}
	return w.OutputWriter.Write(name, content)
}

func TestBuild_WriteFailureIsPerPage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	s.write(t, "htgen/Docs_Keys.html", `<p>keys</p>`)
	reg := s.registry(t, PageEntry{File: "index.html"}, PageEntry{File: "Main_About.html"}, PageEntry{File: "Docs_Keys.html"})

	w := failingWriter{OutputWriter: NewDirWriter(s.path("out")), fail: "Main_About.html"}
	b, err := NewBuilder(testSkeleton, w)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	report, err := b.Build(context.Background(), reg)
	if !errors.Is(err, ErrWriteFailure) {
		t.Fatalf("Build() error = %v, want ErrWriteFailure", err)
	}
	if report == nil {
		t.Fatal("report should be returned on write failures")
	}
	if report.Written() != 2 {
		t.Errorf("Written() = %d, want 2", report.Written())
	}
	failed := report.Failed()
	if len(failed) != 1 || failed[0].Page.File != "Main_About.html" {
		t.Fatalf("Failed() = %+v, want Main_About.html", failed)
	}
	if !strings.Contains(err.Error(), "Main_About.html") || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error should name the page and cause: %v", err)
	}
	// The page after the failure was still written.
	if doc := s.read(t, "out/Docs_Keys.html"); !strings.Contains(doc, "keys") {
		t.Errorf("Docs_Keys.html not written:\n%s", doc)
	}
}

func TestBuild_CanceledContext(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	reg := s.registry(t, PageEntry{File: "index.html"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.builder(t).Build(ctx, reg)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
	if out := s.outputs(t); len(out) != 0 {
		t.Errorf("outputs = %v, want none", out)
	}
}

func TestBuild_LogsWrittenPages(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	s := newTestSite(t)
	reg := s.registry(t, PageEntry{File: "index.html"})

	if _, err := s.builder(t, WithLogger(logger)).Build(context.Background(), reg); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for _, want := range []string{"page written", "file=index.html", "binding=none"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q:\n%s", want, logs.String())
		}
	}
}
