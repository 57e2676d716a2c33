package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBristolStatsUniformSeries(t *testing.T) {
	stats := BristolStats([]int{4, 4, 4, 4})
	assert.Equal(t, 4.0, stats.Mean)
	assert.Equal(t, 0.0, stats.Variance)
	assert.False(t, stats.IsAnomalous())
}

func TestBristolStatsErraticSeries(t *testing.T) {
	stats := BristolStats([]int{1, 1, 7, 7})
	assert.Equal(t, 4.0, stats.Mean)
	assert.Equal(t, 9.0, stats.Variance)
	assert.Equal(t, 3.0, stats.StdDev)
	assert.True(t, stats.IsAnomalous())
}

func TestBristolStatsSingleValue(t *testing.T) {
	stats := BristolStats([]int{1})
	assert.Equal(t, 0.0, stats.Variance)
	assert.False(t, stats.IsAnomalous())
}

func TestBristolStatsOffCenterButStable(t *testing.T) {
	// A consistently constipated series is off-center but not erratic.
	stats := BristolStats([]int{2, 2, 2, 1, 2, 1})
	assert.False(t, stats.IsAnomalous())
}
