package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/plan-framework/satplan/pkg/planning"
)

const (
	failure = time.Duration(0)
	success = time.Duration(1)
)

type fakePlannerWithError struct{}
type fakePlannerWithoutError struct{}

func (p *fakePlannerWithError) Plan(ctx context.Context, problem *planning.Problem) (*Solution, error) {
	return nil, errors.New("fake error")
}

func (p *fakePlannerWithoutError) Plan(ctx context.Context, problem *planning.Problem) (*Solution, error) {
	return &Solution{}, nil
}

func TestInstrumentedPlannerFailure(t *testing.T) {
	result := []time.Duration{}

	changeToFailure := func(num time.Duration) {
		result = append(result, failure)
	}

	changeToSuccess := func(num time.Duration) {
		result = append(result, success)
	}

	instrumentedPlanner := NewInstrumentedPlanner(&fakePlannerWithError{}, changeToSuccess, changeToFailure)
	instrumentedPlanner.Plan(context.Background(), nil)
	require.Equal(t, len(result), 1)     // check that only one call was made to a change function
	require.Equal(t, result[0], failure) // check that the call was made to changeToFailure function
}

func TestInstrumentedPlannerSuccess(t *testing.T) {
	result := []time.Duration{}

	changeToFailure := func(num time.Duration) {
		result = append(result, failure)
	}

	changeToSuccess := func(num time.Duration) {
		result = append(result, success)
	}

	instrumentedPlanner := NewInstrumentedPlanner(&fakePlannerWithoutError{}, changeToSuccess, changeToFailure)
	instrumentedPlanner.Plan(context.Background(), nil)
	require.Equal(t, len(result), 1)     // check that only one call was made to a change function
	require.Equal(t, result[0], success) // check that the call was made to changeToSuccess function
}
