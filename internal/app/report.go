package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	badColor  = color.New(color.FgRed)
)

// PrintReport writes a short human summary of an integration run.
func PrintReport(w io.Writer, rep Report) {
	okColor.Fprintf(w, "copied: %d\n", len(rep.Copied))
	for _, p := range rep.MergePending {
		warnColor.Fprintf(w, "merge pending: %s\n", p)
	}
	for _, p := range rep.Unexpected {
		badColor.Fprintf(w, "unexpected file: %s\n", p)
	}
	if len(rep.MergePending)+len(rep.Unexpected) == 0 {
		fmt.Fprintln(w, "nothing left to review")
	}
}
