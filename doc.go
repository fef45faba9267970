// Package htgen builds a static documentation site from a shared page
// skeleton and a set of content fragments.
//
// # Quick Start
//
// Register the pages, load the skeleton, and build into a directory:
//
//	reg, err := htgen.NewRegistry([]htgen.PageEntry{
//	    {File: "index.html"},
//	    {File: "Main_About.html"},
//	    {File: "Main_Changes2.0.1.html"},
//	}, htgen.Layout{FragmentRoot: "htgen", AuxRoot: "htgen"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	skeleton, err := htgen.LoadSkeleton("htgen", "template")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := htgen.NewBuilder(skeleton, htgen.NewDirWriter("htdocs-OUTPUT"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := b.Build(ctx, reg)
//
// # Build Pipeline
//
// Every page goes through the same stages, in registry order:
//
//  1. Fragment read from the fragment root
//  2. Injection of its bound auxiliary document, if any
//  3. Composition into a fresh copy of the skeleton, with the title
//     placeholder replaced by the page title
//  4. Write to the output root under the page's file name
//
// The registry is validated and every page is composed before the first
// write, so a missing fragment, changelog or injection target never leaves a
// partial site behind. Write failures are reported per page instead.
//
// # Injection
//
// Bindings are decided once, when the registry is built:
//
//   - VerbatimReplace sets the text of one element of the fragment to the
//     exact content of a plain-text document (the TODO list).
//   - MarkupAppend renders a markup document and appends it to the
//     fragment's content container (credits and changelogs).
//   - NoInjection leaves the fragment untouched.
//
// Pages whose key starts with the changelog prefix get a MarkupAppend
// binding to the changelog of the version found in their key, so
// Main_Changes2.0.1.html is bound to changelogs/2.0.1.md.
package htgen
