package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/wildfunctions/symdiff/pkg/catalog"
	"github.com/wildfunctions/symdiff/pkg/expr"
)

// maxMismatches caps the mismatches kept per item.
const maxMismatches = 5

// Item is one expression to sweep together with its sampling interval.
type Item struct {
	Name   string
	Expr   expr.Expr[float64]
	Lo, Hi float64
}

// Runner checks symbolic derivatives against central differences over a
// grid of points.
type Runner struct {
	cfg    Config
	items  []Item
	logger *slog.Logger
}

// New creates a runner from the given config.
func New(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var items []Item
	if cfg.Set != "-" {
		entries, err := catalog.InSet(cfg.Set)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			items = append(items, Item{Name: e.Name, Expr: e.Expr(), Lo: e.Lo, Hi: e.Hi})
		}
	}

	if cfg.Random > 0 {
		g, err := catalog.GetGenerator(cfg.Generator)
		if err != nil {
			return nil, err
		}
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Int63()
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < cfg.Random; i++ {
			items = append(items, Item{
				Name: fmt.Sprintf("random-%d", i),
				Expr: g.RandomTree(rng, cfg.MaxDepth),
				Lo:   0.5,
				Hi:   2,
			})
		}
	}

	if len(items) == 0 {
		return nil, errors.New("nothing to sweep")
	}
	return NewWithItems(cfg, items), nil
}

// NewWithItems creates a runner over explicit items.
func NewWithItems(cfg Config, items []Item) *Runner {
	return &Runner{cfg: cfg, items: items, logger: slog.Default()}
}

// Run sweeps every item on a bounded worker group. Items share no state, so
// results come back in item order regardless of scheduling.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	workers := r.cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	r.logger.Info("starting sweep",
		"items", len(r.items), "points", r.cfg.Points, "workers", workers, "set", r.cfg.Set)

	results := make([]ItemResult, len(r.items))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, item := range r.items {
		eg.Go(func() error {
			res, err := r.check(gctx, item)
			if err != nil {
				return errors.Wrapf(err, "sweeping %s", item.Name)
			}
			results[i] = res
			r.logger.Debug("swept", "item", item.Name,
				"checks", res.Checks, "failures", res.Failures, "skipped", res.Skipped)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Config: r.cfg, Items: results, Elapsed: time.Since(start)}
	for _, res := range results {
		report.Checks += res.Checks
		report.Failures += res.Failures
	}
	r.logger.Info("sweep done", "checks", report.Checks, "failures", report.Failures, "elapsed", report.Elapsed)
	return report, nil
}

// check evaluates one item, its simplified form and its gradient at every
// grid point.
func (r *Runner) check(ctx context.Context, item Item) (ItemResult, error) {
	f := item.Expr
	n := expr.Arity(f)
	simplified := expr.Simplify(f)
	grad := make([]expr.Expr[float64], n)
	for i := range grad {
		grad[i] = expr.Differentiate(f, i)
	}

	res := ItemResult{
		Name:       item.Name,
		Expr:       f.String(),
		Simplified: simplified.String(),
		LaTeX:      f.LaTeX(),
		NodeCount:  f.NodeCount(),
		Complexity: expr.WeightedComplexity(f),
	}
	for _, d := range grad {
		res.Gradient = append(res.Gradient, d.String())
		res.GradientLaTeX = append(res.GradientLaTeX, d.LaTeX())
		res.GradientNodes = append(res.GradientNodes, d.NodeCount())
	}

	pt := make([]float64, n)
	for p := 0; p < r.cfg.Points; p++ {
		if err := ctx.Err(); err != nil {
			return ItemResult{}, err
		}
		gridPoint(pt, p, r.cfg.Points, item.Lo, item.Hi)
		res.Points++

		fx, err := f.Eval(pt...)
		if err != nil {
			return ItemResult{}, err
		}
		if !finite(fx) {
			res.Skipped++
			continue
		}

		sx, err := simplified.Eval(pt...)
		if err != nil {
			return ItemResult{}, err
		}
		res.Checks++
		if e := relErr(sx, fx); !(e <= r.cfg.Tolerance) {
			res.record(Mismatch{Point: clonePoint(pt), Index: -1, Symbolic: formatFloat(sx), Numeric: formatFloat(fx)})
		}

		for i, d := range grad {
			dx, err := d.Eval(pt...)
			if err != nil {
				return ItemResult{}, err
			}
			nx, bound, err := richardson(f, pt, i, r.cfg.Step)
			if err != nil {
				return ItemResult{}, err
			}
			if !finite(dx) || !finite(nx) || !finite(bound) {
				res.Skipped++
				continue
			}
			res.Checks++
			res.MaxError = math.Max(res.MaxError, relErr(dx, nx))
			if !agrees(dx, nx, bound, r.cfg.Tolerance) {
				res.record(Mismatch{Point: clonePoint(pt), Index: i, Symbolic: formatFloat(dx), Numeric: formatFloat(nx)})
			}
		}
	}
	return res, nil
}

func (res *ItemResult) record(m Mismatch) {
	res.Failures++
	if len(res.Mismatches) < maxMismatches {
		res.Mismatches = append(res.Mismatches, m)
	}
}

// gridPoint fills pt with the p-th of n points in [lo, hi]. Each coordinate
// is offset by a different fraction so multi-variable grids do not collapse
// onto the diagonal.
func gridPoint(pt []float64, p, n int, lo, hi float64) {
	for j := range pt {
		frac := (float64(p) + 0.5) / float64(n)
		frac = math.Mod(frac+float64(j)*0.381966, 1)
		pt[j] = lo + (hi-lo)*frac
	}
}

// centralDifference approximates the partial derivative of f along index
// at pt, with a step relative to the coordinate's magnitude.
func centralDifference(f expr.Expr[float64], pt []float64, index int, step float64) (float64, error) {
	h := step * math.Max(1, math.Abs(pt[index]))
	args := clonePoint(pt)

	args[index] = pt[index] + h
	up, err := f.Eval(args...)
	if err != nil {
		return 0, err
	}
	args[index] = pt[index] - h
	down, err := f.Eval(args...)
	if err != nil {
		return 0, err
	}
	return (up - down) / (2 * h), nil
}

// richardson extrapolates central differences at steps h and h/2. The
// returned bound is the gap between the two, which exceeds the truncation
// error left in the extrapolated estimate.
func richardson(f expr.Expr[float64], pt []float64, index int, step float64) (est, bound float64, err error) {
	d1, err := centralDifference(f, pt, index, step)
	if err != nil {
		return 0, 0, err
	}
	d2, err := centralDifference(f, pt, index, step/2)
	if err != nil {
		return 0, 0, err
	}
	return (4*d2 - d1) / 3, math.Abs(d1 - d2), nil
}

// agrees reports whether a symbolic derivative matches a numeric estimate,
// either within the relative tolerance or within the estimate's own error
// bound. Near poles the bound dominates.
func agrees(symbolic, numeric, bound, tol float64) bool {
	return relErr(symbolic, numeric) <= tol || math.Abs(symbolic-numeric) <= bound
}

// relErr is |a-b| scaled by max(1, |b|).
func relErr(a, b float64) float64 {
	if a == b {
		return 0
	}
	return math.Abs(a-b) / math.Max(1, math.Abs(b))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func clonePoint(pt []float64) []float64 {
	return append([]float64(nil), pt...)
}
