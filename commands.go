package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/symdiff/pkg/catalog"
	"github.com/wildfunctions/symdiff/pkg/expr"
	"github.com/wildfunctions/symdiff/pkg/series"
	"github.com/wildfunctions/symdiff/pkg/sweep"
)

type showConfig struct {
	File  string
	Wrt   int
	LaTeX bool
	JSON  bool
	Dump  bool
}

func showCmd() *cobra.Command {
	var cfg showConfig
	cmd := &cobra.Command{
		Use:   "show [NAME]",
		Short: "Show an expression, its simplified form and its derivatives",
		Example: `  symdiff show reciprocal-sin
  symdiff show --file tree.json --wrt 0 --latex`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadExpr(args, cfg.File)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cfg.JSON {
				data, err := expr.Marshal(e)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			render := expr.Expr[float64].String
			if cfg.LaTeX {
				render = expr.Expr[float64].LaTeX
			}

			fmt.Fprintf(out, "f        = %s\n", render(e))
			fmt.Fprintf(out, "simplify = %s\n", render(expr.Simplify(e)))
			fmt.Fprintf(out, "nodes %d, depth %d, arity %d, complexity %.1f\n",
				e.NodeCount(), e.Depth(), expr.Arity(e), expr.WeightedComplexity(e))

			var derivs []expr.Expr[float64]
			if cfg.Wrt >= 0 {
				derivs = append(derivs, expr.Differentiate(e, cfg.Wrt))
			} else {
				derivs = expr.Gradient(e)
			}
			for i, d := range derivs {
				idx := i
				if cfg.Wrt >= 0 {
					idx = cfg.Wrt
				}
				fmt.Fprintf(out, "d/d%-5d = %s  (%d nodes)\n", idx, render(d), d.NodeCount())
				slog.Debug("derivative", "index", idx, "tree", pretty.Sprint(d))
			}

			if cfg.Dump {
				fmt.Fprintf(out, "%# v\n", pretty.Formatter(e))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.File, "file", "f", "", "read the tree from a JSON file")
	cmd.Flags().IntVar(&cfg.Wrt, "wrt", -1, "differentiate with respect to one variable index (-1 = full gradient)")
	cmd.Flags().BoolVar(&cfg.LaTeX, "latex", false, "render as LaTeX")
	cmd.Flags().BoolVar(&cfg.JSON, "json", false, "print the tree as JSON and exit")
	cmd.Flags().BoolVar(&cfg.Dump, "dump", false, "pretty-print the tree structure")
	return cmd
}

// loadExpr resolves a catalog name or a JSON file into a tree.
func loadExpr(args []string, file string) (expr.Expr[float64], error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, errors.New("pass either NAME or --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "reading tree")
		}
		return expr.Unmarshal[float64](data)
	case len(args) == 1:
		entry, err := catalog.Get(args[0])
		if err != nil {
			return nil, err
		}
		return entry.Expr(), nil
	default:
		return nil, errors.Errorf("missing NAME (available: %s)", strings.Join(catalog.Names(), ", "))
	}
}

func sweepCmd() *cobra.Command {
	var configPath string
	cfg := sweep.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check symbolic derivatives against finite differences",
		Example: `  symdiff sweep --set transcendental --points 64
  symdiff sweep --config sweep.toml --format latex > sweep.tex
  symdiff sweep --set - --random 200 --generator kitchensink --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := cfg
			if configPath != "" {
				loaded, err := sweep.LoadConfig(configPath)
				if err != nil {
					return err
				}
				// flags given on the command line win over the file
				run = loaded
				overrideFlags(cmd, &run, cfg)
				if run.Debug {
					setupLogging(cmd.ErrOrStderr(), true)
				}
			}

			r, err := sweep.New(run)
			if err != nil {
				return err
			}
			report, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err := sweep.Write(cmd.OutOrStdout(), run.Format, report); err != nil {
				return err
			}
			if report.Failures > 0 {
				return errors.Errorf("%d of %d checks failed", report.Failures, report.Checks)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.StringVar(&cfg.Set, "set", cfg.Set, `catalog set ("" = all, "-" = none; `+strings.Join(catalog.Sets(), ", ")+")")
	f.IntVar(&cfg.Random, "random", cfg.Random, "number of random trees to add")
	f.StringVar(&cfg.Generator, "generator", cfg.Generator, "random tree generator ("+strings.Join(catalog.GeneratorNames(), ", ")+")")
	f.IntVar(&cfg.MaxDepth, "maxdepth", cfg.MaxDepth, "max random tree depth")
	f.IntVar(&cfg.Points, "points", cfg.Points, "grid points per expression")
	f.Float64Var(&cfg.Step, "step", cfg.Step, "relative finite-difference step")
	f.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "allowed relative error")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel workers")
	f.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json, latex)")
	return cmd
}

// overrideFlags copies every flag the user set explicitly from flags into cfg.
func overrideFlags(cmd *cobra.Command, cfg *sweep.Config, flags sweep.Config) {
	changed := cmd.Flags().Changed
	if changed("set") {
		cfg.Set = flags.Set
	}
	if changed("random") {
		cfg.Random = flags.Random
	}
	if changed("generator") {
		cfg.Generator = flags.Generator
	}
	if changed("maxdepth") {
		cfg.MaxDepth = flags.MaxDepth
	}
	if changed("points") {
		cfg.Points = flags.Points
	}
	if changed("step") {
		cfg.Step = flags.Step
	}
	if changed("tolerance") {
		cfg.Tolerance = flags.Tolerance
	}
	if changed("seed") {
		cfg.Seed = flags.Seed
	}
	if changed("workers") {
		cfg.Workers = flags.Workers
	}
	if changed("format") {
		cfg.Format = flags.Format
	}
}

type taylorConfig struct {
	File  string
	Wrt   int
	At    []float64
	Order int
	X     []float64
}

func taylorCmd() *cobra.Command {
	var cfg taylorConfig
	cmd := &cobra.Command{
		Use:   "taylor [NAME]",
		Short: "Expand an expression as a Taylor polynomial along one variable",
		Example: `  symdiff taylor exp --at 0 --order 12 --x 1
  symdiff taylor catenary --wrt 0 --at 0.5,1 --x 0.7,0.9`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadExpr(args, cfg.File)
			if err != nil {
				return err
			}
			at := cfg.At
			if len(at) == 0 {
				at = defaultPoint(args, expr.Arity(e))
			}

			s, err := series.Expand(e, cfg.Wrt, at, cfg.Order)
			if err != nil {
				return err
			}
			slog.Debug("expanded", "order", s.Order(), "derivative_nodes", s.NodeCount())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s)
			for k, c := range s.Coeffs {
				fmt.Fprintf(out, "  c%-3d = %-24g  d^%d f = %s\n", k, c, k, s.Derivatives[k])
			}
			for _, x := range cfg.X {
				result := s.Evaluate(x)
				acc, err := s.CompareExact(result, x)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "x = %g: partial %.17g, exact %.17g, error %.3e, %.1f digits, converged %v\n",
					x, result.PartialSum, acc.Exact, acc.AbsError, acc.CorrectDigits, result.Converged)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.File, "file", "f", "", "read the tree from a JSON file")
	cmd.Flags().IntVar(&cfg.Wrt, "wrt", 0, "variable index to expand along")
	cmd.Flags().Float64SliceVar(&cfg.At, "at", nil, "expansion point, one value per variable (default: middle of the sampling interval)")
	cmd.Flags().IntVar(&cfg.Order, "order", 8, "highest power")
	cmd.Flags().Float64SliceVar(&cfg.X, "x", nil, "values of the expanded variable to evaluate the polynomial at")
	return cmd
}

// defaultPoint picks the middle of a catalog entry's interval, or zeros.
func defaultPoint(args []string, arity int) []float64 {
	at := make([]float64, max(arity, 1))
	if len(args) == 1 {
		if entry, err := catalog.Get(args[0]); err == nil {
			for i := range at {
				at[i] = (entry.Lo + entry.Hi) / 2
			}
		}
	}
	return at
}
