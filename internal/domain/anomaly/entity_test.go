package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateScore_SumsReasonWeights(t *testing.T) {
	t.Parallel()

	reasons := []Reason{
		{Code: CodeOffHours, Score: 20},
		{Code: CodeDuplicateEntry, Score: 15},
	}

	assert.Equal(t, 35, AggregateScore(reasons))
}

func TestAggregateScore_ClampsAtHundred(t *testing.T) {
	t.Parallel()

	reasons := []Reason{
		{Score: 20},
		{Score: 30},
		{Score: 60},
	}

	assert.Equal(t, 100, AggregateScore(reasons))
}

func TestAggregateScore_EmptyReasons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, AggregateScore(nil))
	assert.Equal(t, 0, AggregateScore([]Reason{}))
}
