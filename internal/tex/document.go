// Package tex handles document templating, the scratch workspace, and the
// external LaTeX compiler invocation.
package tex

import "strings"

// Document describes a LaTeX document to compile.
//
// The snippet is wrapped in a standalone document class so the produced
// page is cropped to the content.
type Document struct {
	// Snippet is the user-typed LaTeX body.
	Snippet string

	// Packages are \usepackage entries added to the preamble.
	Packages []string
}

// Source renders the complete .tex source for the document.
func (d Document) Source() string {
	var b strings.Builder
	b.WriteString("\\documentclass[preview, border=5pt]{standalone}\n")
	for _, pkg := range d.Packages {
		b.WriteString("\\usepackage{" + pkg + "}\n")
	}
	b.WriteString("\\begin{document}\n")
	b.WriteString(d.Snippet)
	b.WriteString("\n\\end{document}\n")
	return b.String()
}
