// Package terminal prints the tools' console output: per-file optimizer
// lines, run summaries and the manifest views used by cs show.
package terminal

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sonnes/chitrashala/core"
)

// Report prints optimizer progress to w. It satisfies optimize.Reporter.
type Report struct {
	w io.Writer
}

// NewReport creates a Report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Converted prints the [OK] line for a file that was replaced.
func (r *Report) Converted(path, output string, res core.Result) {
	fmt.Fprintf(r.w, "%s %s -> %s  ... %s -> %s\n",
		styleOK.Render("[OK]"), path, filepath.Base(output),
		core.HumanBytes(res.Before), core.HumanBytes(res.After))
}

// Failed prints the [FAIL] line for a file that could not be converted.
func (r *Report) Failed(path string, err error) {
	fmt.Fprintf(r.w, "%s %s: %v\n", styleFail.Render("[FAIL]"), path, err)
}

// Summary prints the totals block that ends an optimizer run.
func (r *Report) Summary(t core.Totals) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, styleTitle.Render("--- Summary ---"))
	writeStat(r.w, "Scanned:", fmt.Sprintf("%d", t.Scanned))
	writeStat(r.w, "Converted:", fmt.Sprintf("%d", t.Converted))
	writeStat(r.w, "Before:", core.HumanBytes(t.Before))
	writeStat(r.w, "After:", core.HumanBytes(t.After))
	writeStat(r.w, "Saved:", core.HumanBytes(t.Saved()))
}

func writeStat(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", styleStatLabel.Render(fmt.Sprintf("%-10s", label)), styleStat.Render(value))
}

// IndexWritten prints the one-line result of an index build.
func IndexWritten(w io.Writer, path string, missions, images int) {
	fmt.Fprintf(w, "Wrote %s (%d missions, %d images)\n", filepath.ToSlash(path), missions, images)
}
