package sweep

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Mismatch is one grid point where a check failed. Index -1 marks the
// simplified form disagreeing with the original.
type Mismatch struct {
	Point    []float64 `json:"point"`
	Index    int       `json:"index"`
	Symbolic string    `json:"symbolic"` // %g formatted; may be NaN or Inf
	Numeric  string    `json:"numeric"`
}

// ItemResult summarizes the sweep of one expression.
type ItemResult struct {
	Name          string     `json:"name"`
	Expr          string     `json:"expr"`
	Simplified    string     `json:"simplified"`
	LaTeX         string     `json:"latex"`
	Gradient      []string   `json:"gradient"`
	GradientLaTeX []string   `json:"gradient_latex"`
	NodeCount     int        `json:"node_count"`
	GradientNodes []int      `json:"gradient_nodes"`
	Complexity    float64    `json:"complexity"`
	Points        int        `json:"points"`
	Checks        int        `json:"checks"`
	Skipped       int        `json:"skipped"`
	Failures      int        `json:"failures"`
	MaxError      float64    `json:"max_error"`
	Mismatches    []Mismatch `json:"mismatches,omitempty"`
}

// Report summarizes the entire run.
type Report struct {
	Config   Config        `json:"config"`
	Items    []ItemResult  `json:"items"`
	Checks   int           `json:"checks"`
	Failures int           `json:"failures"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Failed returns the items with at least one failed check, worst first.
func (r Report) Failed() []ItemResult {
	var out []ItemResult
	for _, it := range r.Items {
		if it.Failures > 0 {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Failures > out[j].Failures
	})
	return out
}

// Write renders the report in the given format.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "json":
		return WriteJSON(w, r)
	case "latex":
		WriteLatex(w, r)
	case "text", "":
		WriteText(w, r)
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return nil
}

// WriteItem writes one item in human-readable format.
func WriteItem(w io.Writer, it ItemResult) {
	status := "ok"
	if it.Failures > 0 {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%-16s %4s | %3d checks, %2d skipped, max err %.2e | %d nodes, complexity %.1f\n",
		it.Name, status, it.Checks, it.Skipped, it.MaxError, it.NodeCount, it.Complexity)
	fmt.Fprintf(w, "  f        = %s\n", it.Expr)
	if it.Simplified != it.Expr {
		fmt.Fprintf(w, "  simplify = %s\n", it.Simplified)
	}
	for i, d := range it.Gradient {
		fmt.Fprintf(w, "  d/d%-5d = %s  (%d nodes)\n", i, d, it.GradientNodes[i])
	}
	for _, m := range it.Mismatches {
		fmt.Fprintf(w, "  mismatch at %v index %d: symbolic %s, numeric %s\n",
			m.Point, m.Index, m.Symbolic, m.Numeric)
	}
}

// WriteText writes the report in human-readable format.
func WriteText(w io.Writer, r Report) {
	for _, it := range r.Items {
		WriteItem(w, it)
	}
	fmt.Fprintln(w, "\n========== SWEEP RESULT ==========")
	fmt.Fprintf(w, "Items:     %d\n", len(r.Items))
	fmt.Fprintf(w, "Points:    %d per item\n", r.Config.Points)
	fmt.Fprintf(w, "Checks:    %d\n", r.Checks)
	fmt.Fprintf(w, "Failures:  %d\n", r.Failures)
	for _, it := range r.Failed() {
		fmt.Fprintf(w, "  %s: %d failures\n", it.Name, it.Failures)
	}
	fmt.Fprintf(w, "Elapsed:   %s\n", r.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(w, "==================================")
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// latexEscape escapes underscores and other special chars for LaTeX text mode.
func latexEscape(s string) string {
	return strings.NewReplacer(`_`, `\_`, `#`, `\#`, `%`, `\%`, `&`, `\&`).Replace(s)
}

// WriteLatex writes a compilable LaTeX document listing every expression
// with its partial derivatives.
func WriteLatex(w io.Writer, r Report) {
	set := r.Config.Set
	if set == "" {
		set = "all"
	}

	fmt.Fprintln(w, `\documentclass{article}`)
	fmt.Fprintln(w, `\usepackage{amsmath}`)
	fmt.Fprintln(w, `\usepackage{geometry}`)
	fmt.Fprintln(w, `\geometry{margin=1in}`)
	fmt.Fprintf(w, "\\title{Derivative sweep --- Set: \\texttt{%s}}\n", latexEscape(set))
	fmt.Fprintln(w, `\date{\today}`)
	fmt.Fprintln(w, `\begin{document}`)
	fmt.Fprintln(w, `\maketitle`)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "\\noindent Points: %d, Step: %g, Tolerance: %g, Workers: %d\\\\\n",
		r.Config.Points, r.Config.Step, r.Config.Tolerance, r.Config.Workers)
	fmt.Fprintf(w, "Checks: %d, Failures: %d\n\n", r.Checks, r.Failures)

	for _, it := range r.Items {
		fmt.Fprintf(w, "\\subsection*{%s --- %d nodes}\n", latexEscape(it.Name), it.NodeCount)
		fmt.Fprintln(w, `\begin{align*}`)
		fmt.Fprintf(w, "  f &= %s", it.LaTeX)
		for i, d := range it.GradientLaTeX {
			fmt.Fprintf(w, " \\\\\n  \\frac{\\partial f}{\\partial x_{%d}} &= %s", i, d)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, `\end{align*}`)
		if it.Failures > 0 {
			fmt.Fprintf(w, "\\noindent %d of %d checks failed, max error \\verb|%.3e|\n\n",
				it.Failures, it.Checks, it.MaxError)
		}
	}

	fmt.Fprintln(w, `\end{document}`)
}
