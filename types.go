package htgen

import "fmt"

// Layout defaults.
const (
	DefaultFallbackTitle   = "MainPage"
	DefaultChangelogPrefix = "Main_Changes"
	DefaultChangelogDir    = "changelogs"
	DefaultChangelogExt    = ".md"
	DefaultTODOTarget      = "todo"
)

// Layout locates a site's inputs and the conventions used to bind pages.
// Zero-valued conventions are replaced by their defaults.
type Layout struct {
	FragmentRoot    string // Directory holding one fragment per page
	AuxRoot         string // Directory holding changelogs, credits and TODO; FragmentRoot when empty
	FallbackTitle   string // Title of pages whose name has no second component
	ChangelogPrefix string // Page key prefix that marks a changelog page
	ChangelogDir    string // Changelog directory under AuxRoot
	ChangelogExt    string // Changelog file extension, including the dot
	TODOTarget      string // Element id filled by replace bindings that name none
}

// withDefaults returns a copy of l with empty conventions filled in.
func (l Layout) withDefaults() Layout {
	if l.AuxRoot == "" {
		l.AuxRoot = l.FragmentRoot
	}
	if l.FallbackTitle == "" {
		l.FallbackTitle = DefaultFallbackTitle
	}
	if l.ChangelogPrefix == "" {
		l.ChangelogPrefix = DefaultChangelogPrefix
	}
	if l.ChangelogDir == "" {
		l.ChangelogDir = DefaultChangelogDir
	}
	if l.ChangelogExt == "" {
		l.ChangelogExt = DefaultChangelogExt
	}
	if l.TODOTarget == "" {
		l.TODOTarget = DefaultTODOTarget
	}
	return l
}

// InjectMode selects how an auxiliary document is merged into a page.
type InjectMode string

const (
	InjectReplace InjectMode = "replace" // Verbatim text of one element
	InjectAppend  InjectMode = "append"  // Rendered markup after the page content
)

// InjectEntry declares an explicit binding for a page.
type InjectEntry struct {
	Mode   InjectMode
	Source string // Relative to Layout.AuxRoot unless absolute
	Target string // Element id; optional
}

// PageEntry declares one page of the site.
type PageEntry struct {
	File   string       // Fragment file name, also the output file name
	Inject *InjectEntry // nil for changelog detection or no injection
}

// BindingKind tags how a page receives external content.
type BindingKind int

const (
	NoInjection BindingKind = iota
	VerbatimReplace
	MarkupAppend
)

// String returns the binding name used in logs and reports.
func (k BindingKind) String() string {
	switch k {
	case NoInjection:
		return "none"
	case VerbatimReplace:
		return "replace"
	case MarkupAppend:
		return "append"
	default:
		return fmt.Sprintf("BindingKind(%d)", int(k))
	}
}

// Binding ties a page to an auxiliary document.
type Binding struct {
	Kind    BindingKind
	Source  string // Path of the auxiliary document
	Target  string // Element id; empty means the fragment's content container
	Version string // Version token, set for changelog pages only
}

// Page is a registered page with everything decided at registration time.
type Page struct {
	Key          string // File name without extension
	File         string // Output file name
	FragmentPath string // Path of the source fragment
	Title        string // Derived title
	Binding      Binding
}
