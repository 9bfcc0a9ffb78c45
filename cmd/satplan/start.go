package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plan-framework/satplan/pkg/lib/signals"
	"github.com/plan-framework/satplan/pkg/metrics"
	"github.com/plan-framework/satplan/pkg/planning"
	"github.com/plan-framework/satplan/pkg/planning/encoding"
	"github.com/plan-framework/satplan/pkg/planning/ground"
	"github.com/plan-framework/satplan/pkg/planning/planner"
	"github.com/plan-framework/satplan/pkg/planning/solver"
	satplanversion "github.com/plan-framework/satplan/pkg/version"
)

const (
	defaultBackend = "gini"
	defaultTimeout = 5 * time.Minute
)

type options struct {
	backend    string
	maxHorizon int
	debug      bool
	version    bool
	dimacs     bool

	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "satplan <problem.yaml>",
		Short:        "Finds a shortest-horizon plan for a ground planning problem with a SAT solver",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.version {
				fmt.Print(satplanversion.String())
				return nil
			}
			if len(args) != 1 {
				return errors.New("expected the path of a problem document")
			}

			logger := logrus.New()
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			logger.Infof("log level %s", logger.Level)

			ctx, cancel := context.WithCancel(signals.Context())
			defer cancel()

			if err := o.run(ctx, logger, args[0]); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&o.backend, "backend", defaultBackend, "SAT backend to solve with (gini or gophersat)")
	cmd.Flags().IntVar(&o.maxHorizon, "max-horizon", 0, "stop growing the horizon past this plan length, 0 to grow without bound")
	cmd.Flags().DurationVar(&o.timeout, "timeout", defaultTimeout, "time limit per solver invocation, 0 to disable")

	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.Flags().BoolVar(&o.version, "version", false, "displays the satplan version")
	cmd.Flags().BoolVar(&o.dimacs, "dimacs", false, "print the horizon-1 encoding in DIMACS format instead of solving")

	return cmd
}

func (o *options) run(ctx context.Context, logger *logrus.Logger, path string) error {
	problem, err := ground.Load(path)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"problem": problem.Name,
		"fluents": len(problem.Fluents),
		"actions": len(problem.Actions),
	}).Info("problem loaded")

	if o.dimacs {
		if err := planning.CheckSupport(problem); err != nil {
			return err
		}
		comment := "generated by satplan"
		if problem.Name != "" {
			comment = fmt.Sprintf("generated by satplan from problem %q", problem.Name)
		}
		return encoding.WriteDIMACS(os.Stdout, encoding.NewEncoder(problem).Encode(1), comment)
	}

	backend, err := backendByName(o.backend)
	if err != nil {
		return err
	}

	metrics.RegisterSatplan()
	p, err := planner.New(
		planner.WithBackend(backend),
		planner.WithLogger(logger),
		planner.WithMaxHorizon(o.maxHorizon),
		planner.WithTimeout(o.timeout),
	)
	if err != nil {
		return err
	}
	instrumented := planner.NewInstrumentedPlanner(p, metrics.RegisterSearchSuccess, metrics.RegisterSearchFailure)

	solution, err := instrumented.Plan(ctx, problem)
	if err != nil {
		return err
	}
	metrics.AddHorizonsProbed(len(solution.Statistics.Horizons))

	for i, action := range solution.Plan {
		fmt.Printf("%d: %s\n", i, action.Name)
	}
	logger.WithFields(logrus.Fields{
		"steps":      len(solution.Plan),
		"horizon":    solution.Statistics.FinalHorizon,
		"horizons":   len(solution.Statistics.Horizons),
		"variables":  solution.Statistics.Variables,
		"clauses":    solution.Statistics.Clauses,
		"encodeTime": solution.Statistics.EncodeTime,
		"solveTime":  solution.Statistics.SolveTime,
	}).Info("search finished")

	return nil
}

func backendByName(name string) (solver.Backend, error) {
	switch name {
	case "gini":
		return solver.Gini(), nil
	case "gophersat":
		return solver.Gophersat(), nil
	}
	return nil, errors.Errorf("unknown backend %q (expected gini or gophersat)", name)
}
