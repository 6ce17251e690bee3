// SPDX-License-Identifier: MIT

package invsqrt

import (
	"github.com/katalvlaran/panmat/panel"
	"github.com/katalvlaran/panmat/spectrum"
	"github.com/katalvlaran/panmat/summa"
)

const opRun = "Run"

// RunConfig describes one end-to-end experiment: generate a matrix with a
// prescribed spectrum, solve for its inverse square root, report. Zero
// values select defaults where a default exists.
type RunConfig struct {
	// Shape and representation.
	Dim       int
	Dtype     panel.Dtype
	PanelSize int

	// Execution engine for every product of the solve.
	Mode    summa.Mode
	Workers int // 0 ⇒ engine default

	// Seed pins the generator; nil draws a time-derived seed.
	Seed *int64

	// Solver knobs; zero values resolve to the dtype/default constants.
	Eps     float64
	MaxIter int
	SThresh float64

	// SMinEstimate seeds the warm-up tracker; nil leaves it at machine
	// epsilon. UseTrueSMin overrides it with the exact smallest eigenvalue
	// of the generated matrix, the best case for the warm-up.
	SMinEstimate *float64
	UseTrueSMin  bool

	// Spectrum of the generated matrix.
	SMin, SMax   float64
	Distribution spectrum.Kind
}

// RunResult is the dtype-erased outcome of a Run.
type RunResult struct {
	// Input is the generated SPD matrix, InvSqrt the computed A⁻¹ᐟ². Both
	// are *panel.Dense of the configured dtype behind the interface.
	Input   panel.Matrix
	InvSqrt panel.Matrix

	RogueIterations int
	TotalIterations int
	Residual        float64
	Converged       bool
}

// Run executes one generate-and-solve experiment. It is the dtype-erased
// entry point: the Dtype field picks the concrete instantiation, so callers
// driven by configuration files or flags never touch generics.
//
// Errors:
//   - spectrum.ErrInvalidSpectrum (bad eigenvalue bounds).
//   - panel.ErrBadShape, panel.ErrDtypeMismatch (bad shape or dtype tag).
//   - ErrDivergence (solve left its basin).
func Run(cfg RunConfig) (*RunResult, error) {
	switch cfg.Dtype {
	case panel.Float32:
		return runTyped[float32](cfg)
	case panel.Float64:
		return runTyped[float64](cfg)
	case panel.Complex64:
		return runTyped[complex64](cfg)
	case panel.Complex128:
		return runTyped[complex128](cfg)
	default:
		return nil, invsqrtErrorf(opRun, panel.ErrDtypeMismatch)
	}
}

// runTyped is the generic body behind Run.
func runTyped[T panel.Number](cfg RunConfig) (*RunResult, error) {
	spec := spectrum.Spec{
		SMin: cfg.SMin,
		SMax: cfg.SMax,
		Kind: cfg.Distribution,
		Dim:  cfg.Dim,
	}

	var genOpts []spectrum.Option
	if cfg.Seed != nil {
		genOpts = append(genOpts, spectrum.WithSeed(*cfg.Seed))
	}

	a, err := spectrum.Generate[T](spec, cfg.PanelSize, genOpts...)
	if err != nil {
		return nil, invsqrtErrorf(opRun, err)
	}

	solveOpts := []Option{WithMode(cfg.Mode)}
	if cfg.Workers > 0 {
		solveOpts = append(solveOpts, WithWorkers(cfg.Workers))
	}
	if cfg.Eps > 0 {
		solveOpts = append(solveOpts, WithEps(cfg.Eps))
	}
	if cfg.MaxIter > 0 {
		solveOpts = append(solveOpts, WithMaxIter(cfg.MaxIter))
	}
	if cfg.SThresh > 0 {
		solveOpts = append(solveOpts, WithSwitchThreshold(cfg.SThresh))
	}
	switch {
	case cfg.UseTrueSMin:
		// The generator places an eigenvalue exactly at SMin.
		solveOpts = append(solveOpts, WithSMinEstimate(cfg.SMin))
	case cfg.SMinEstimate != nil:
		solveOpts = append(solveOpts, WithSMinEstimate(*cfg.SMinEstimate))
	}

	res, err := Solve(a, solveOpts...)
	if err != nil {
		return nil, invsqrtErrorf(opRun, err)
	}

	return &RunResult{
		Input:           a,
		InvSqrt:         res.InvSqrt,
		RogueIterations: res.RogueIterations,
		TotalIterations: res.TotalIterations,
		Residual:        res.Residual,
		Converged:       res.Converged,
	}, nil
}
