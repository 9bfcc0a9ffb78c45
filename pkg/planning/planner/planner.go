// Package planner drives the bounded-horizon search: encode the
// problem at a candidate horizon, hand the formula to a SAT backend,
// and either decode the resulting model into a plan or double the
// horizon and try again.
package planner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/plan-framework/satplan/pkg/planning"
	"github.com/plan-framework/satplan/pkg/planning/encoding"
	"github.com/plan-framework/satplan/pkg/planning/solver"
)

// ErrHorizonExhausted reports that the configured horizon ceiling was
// reached with every attempted horizon unsatisfiable.
var ErrHorizonExhausted = errors.New("no plan within the horizon ceiling")

// Statistics describes one search: the horizons probed in order, the
// dimensions of the last formula, and the encoding and solving time
// accumulated across every horizon.
type Statistics struct {
	Horizons     []int
	FinalHorizon int
	Variables    int
	Clauses      int
	EncodeTime   time.Duration
	SolveTime    time.Duration
}

// Solution carries a successful search's plan and statistics.
type Solution struct {
	Plan       planning.Plan
	Statistics Statistics
}

// Planner finds a totally ordered plan for a ground problem, or
// reports why none was found.
type Planner interface {
	Plan(ctx context.Context, problem *planning.Problem) (*Solution, error)
}

type satPlanner struct {
	backend    solver.Backend
	logger     *logrus.Logger
	maxHorizon int
	timeout    time.Duration
}

// Option configures a Planner.
type Option func(s *satPlanner) error

// WithBackend selects the SAT backend the search drives. The default
// is gini.
func WithBackend(backend solver.Backend) Option {
	return func(s *satPlanner) error {
		if backend == nil {
			return errors.New("cannot use a nil backend")
		}
		s.backend = backend
		return nil
	}
}

// WithLogger routes the search's progress logging.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *satPlanner) error {
		s.logger = logger
		return nil
	}
}

// WithMaxHorizon caps horizon growth. Once every horizon up to the cap
// has proven unsatisfiable the search fails with ErrHorizonExhausted.
// Zero means no cap.
func WithMaxHorizon(horizon int) Option {
	return func(s *satPlanner) error {
		if horizon < 0 {
			return errors.Errorf("negative horizon ceiling %d", horizon)
		}
		s.maxHorizon = horizon
		return nil
	}
}

// WithTimeout bounds each solver invocation. A solve that exceeds the
// bound fails the whole search; a timed-out horizon is never retried.
// Zero means no bound.
func WithTimeout(timeout time.Duration) Option {
	return func(s *satPlanner) error {
		if timeout < 0 {
			return errors.Errorf("negative solve timeout %s", timeout)
		}
		s.timeout = timeout
		return nil
	}
}

var defaults = []Option{
	func(s *satPlanner) error {
		if s.backend == nil {
			s.backend = solver.Gini()
		}
		return nil
	},
	func(s *satPlanner) error {
		if s.logger == nil {
			s.logger = logrus.StandardLogger()
		}
		return nil
	},
}

// New returns a Planner configured by the given options.
func New(options ...Option) (Planner, error) {
	s := satPlanner{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Plan searches horizons 1, 2, 4, and so on until the encoding becomes
// satisfiable, then decodes the model into a plan. Unsupported problem
// requirements are rejected before any encoding work. Unsatisfiability
// is the only verdict that grows the horizon; a contradiction at load
// time, a solve timeout, or a cancelled context aborts the search.
func (s *satPlanner) Plan(ctx context.Context, problem *planning.Problem) (*Solution, error) {
	if err := planning.CheckSupport(problem); err != nil {
		return nil, err
	}

	enc := encoding.NewEncoder(problem)
	var stats Statistics

	for horizon := 1; ; horizon *= 2 {
		if s.maxHorizon > 0 && horizon > s.maxHorizon {
			s.logger.WithField("maxHorizon", s.maxHorizon).Warn("horizon ceiling reached without a plan")
			return nil, errors.Wrapf(ErrHorizonExhausted, "every horizon through %d is unsatisfiable", s.maxHorizon)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		encodeStart := time.Now()
		cnf := enc.Encode(horizon)
		stats.EncodeTime += time.Since(encodeStart)
		stats.Horizons = append(stats.Horizons, horizon)
		stats.FinalHorizon = horizon
		stats.Variables = cnf.Variables
		stats.Clauses = len(cnf.Clauses)

		s.logger.WithFields(logrus.Fields{
			"backend":   s.backend.Name(),
			"horizon":   horizon,
			"variables": cnf.Variables,
			"clauses":   len(cnf.Clauses),
		}).Debug("problem encoded")

		instance := s.backend.New(cnf.Variables)
		if err := instance.Load(cnf.Clauses); err != nil {
			return nil, errors.Wrapf(err, "loading clauses at horizon %d", horizon)
		}

		solveCtx, cancel := s.solveContext(ctx)
		solveStart := time.Now()
		model, err := instance.Solve(solveCtx)
		stats.SolveTime += time.Since(solveStart)
		cancel()

		switch {
		case err == nil:
			plan, err := enc.DecodePlan(model)
			if err != nil {
				return nil, errors.Wrap(err, "decoding model")
			}
			s.logger.WithFields(logrus.Fields{
				"horizon": horizon,
				"steps":   len(plan),
			}).Info("plan found")
			return &Solution{Plan: plan, Statistics: stats}, nil
		case errors.Cause(err) == solver.ErrUnsatisfiable:
			s.logger.WithField("horizon", horizon).Debug("horizon unsatisfiable, growing")
		default:
			s.logger.WithError(err).WithField("horizon", horizon).Warn("search aborted")
			return nil, errors.Wrapf(err, "solving at horizon %d", horizon)
		}
	}
}

// solveContext derives the per-invocation context: the caller's, with
// the configured timeout layered on when one is set.
func (s *satPlanner) solveContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
