package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSearchDurationTracksBothOutcomes(t *testing.T) {
	RegisterSearchSuccess(time.Second)
	RegisterSearchSuccess(2 * time.Second)
	RegisterSearchFailure(time.Second)

	// One summary child per outcome label value.
	assert.Equal(t, 2, testutil.CollectAndCount(searchDuration))
}

func TestAddHorizonsProbed(t *testing.T) {
	before := testutil.ToFloat64(horizonsProbed)
	AddHorizonsProbed(4)
	assert.Equal(t, before+4, testutil.ToFloat64(horizonsProbed))
}
