package htgen

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htgen/internal/fileutil"
	"github.com/alnah/go-htgen/internal/hints"
)

// Registry is the ordered, read-only list of pages of a site.
// The order is the declaration order and is stable between runs.
type Registry struct {
	pages  []Page
	index  map[string]int
	layout Layout
}

// NewRegistry builds a registry from entries, deciding each page's title and
// binding. An explicit inject entry wins; otherwise a key starting with the
// changelog prefix gets a MarkupAppend binding to its versioned changelog.
// Returns ErrInvalidPage for empty or path-carrying file names and
// ErrDuplicatePage when two entries share a key.
func NewRegistry(entries []PageEntry, layout Layout) (*Registry, error) {
	layout = layout.withDefaults()
	r := &Registry{
		pages:  make([]Page, 0, len(entries)),
		index:  make(map[string]int, len(entries)),
		layout: layout,
	}

	for i, e := range entries {
		if err := validateFileName(e.File); err != nil {
			return nil, fmt.Errorf("pages[%d]: %w", i, err)
		}

		key := strings.TrimSuffix(e.File, filepath.Ext(e.File))
		if prev, ok := r.index[key]; ok {
			return nil, fmt.Errorf("%w: %q (entries %d and %d)", ErrDuplicatePage, key, prev, i)
		}

		binding, err := layout.bind(key, e.Inject)
		if err != nil {
			return nil, fmt.Errorf("pages[%d] %s: %w", i, e.File, err)
		}

		r.index[key] = len(r.pages)
		r.pages = append(r.pages, Page{
			Key:          key,
			File:         e.File,
			FragmentPath: filepath.Join(layout.FragmentRoot, e.File),
			Title:        DeriveTitle(e.File, layout.FallbackTitle),
			Binding:      binding,
		})
	}

	return r, nil
}

// validateFileName rejects names that could not live flat in a directory.
func validateFileName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidPage)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidPage, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidPage, name)
	}
	return nil
}

// bind decides the binding of the page with the given key.
func (l Layout) bind(key string, inj *InjectEntry) (Binding, error) {
	if inj != nil {
		if inj.Source == "" {
			return Binding{}, fmt.Errorf("%w: inject entry has no source", ErrInvalidPage)
		}
		source := inj.Source
		if !filepath.IsAbs(source) {
			source = filepath.Join(l.AuxRoot, source)
		}

		switch inj.Mode {
		case InjectReplace:
			target := inj.Target
			if target == "" {
				target = l.TODOTarget
			}
			return Binding{Kind: VerbatimReplace, Source: source, Target: target}, nil
		case InjectAppend:
			return Binding{Kind: MarkupAppend, Source: source, Target: inj.Target}, nil
		default:
			return Binding{}, fmt.Errorf("%w: unknown inject mode %q", ErrInvalidPage, inj.Mode)
		}
	}

	if version, ok := VersionToken(key, l.ChangelogPrefix); ok {
		return Binding{
			Kind:    MarkupAppend,
			Source:  filepath.Join(l.AuxRoot, l.ChangelogDir, version+l.ChangelogExt),
			Version: version,
		}, nil
	}

	return Binding{Kind: NoInjection}, nil
}

// DeriveTitle returns the second "_"-separated component of file's base name
// without extension, or fallback when there is none.
// "Main_About.html" gives "About"; "index.html" gives fallback.
func DeriveTitle(file, fallback string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return fallback
	}
	return parts[1]
}

// VersionToken returns the part of key after prefix. It reports false when
// key does not start with prefix or nothing follows it.
func VersionToken(key, prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	version, ok := strings.CutPrefix(key, prefix)
	if !ok || version == "" {
		return "", false
	}
	return version, true
}

// Pages returns the pages in registry order. The slice is a copy.
func (r *Registry) Pages() []Page {
	out := make([]Page, len(r.pages))
	copy(out, r.pages)
	return out
}

// Len returns the number of registered pages.
func (r *Registry) Len() int { return len(r.pages) }

// Lookup returns the page with the given key.
func (r *Registry) Lookup(key string) (Page, bool) {
	i, ok := r.index[key]
	if !ok {
		return Page{}, false
	}
	return r.pages[i], true
}

// Layout returns the layout with defaults applied.
func (r *Registry) Layout() Layout { return r.layout }

// Validate checks that every fragment and every bound document exists.
// All problems are reported, joined, each naming its page: ErrMissingFragment,
// ErrMissingChangelog (with the version) or ErrMissingSource.
func (r *Registry) Validate() error {
	var errs []error
	for _, p := range r.pages {
		if !fileutil.FileExists(p.FragmentPath) {
			errs = append(errs, fmt.Errorf("%w: page %s: %s%s",
				ErrMissingFragment, p.Key, p.FragmentPath, hints.ForMissingFragment(r.layout.FragmentRoot)))
		}

		b := p.Binding
		if b.Kind == NoInjection || fileutil.FileExists(b.Source) {
			continue
		}
		if b.Version != "" {
			errs = append(errs, fmt.Errorf("%w: page %s: version %s: %s%s",
				ErrMissingChangelog, p.Key, b.Version, b.Source, hints.ForMissingChangelog(b.Source)))
			continue
		}
		errs = append(errs, fmt.Errorf("%w: page %s: %s", ErrMissingSource, p.Key, b.Source))
	}
	return errors.Join(errs...)
}
