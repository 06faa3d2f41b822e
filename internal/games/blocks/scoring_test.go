package blocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreDelta(t *testing.T) {
	tests := []struct {
		cleared, level, want int
	}{
		{0, 5, 0},
		{1, 1, 100},
		{2, 1, 200},
		{3, 2, 800},
		{4, 3, 2400},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreDelta(tt.cleared, tt.level), "%d rows at level %d", tt.cleared, tt.level)
	}
}

func TestPolicyLevelAndInterval(t *testing.T) {
	p := DefaultConfig().Policy()

	tests := []struct {
		lines    int
		level    int
		interval time.Duration
	}{
		{0, 1, 700 * time.Millisecond},
		{9, 1, 700 * time.Millisecond},
		{10, 2, 650 * time.Millisecond},
		{25, 3, 600 * time.Millisecond},
		{120, 13, 100 * time.Millisecond},
		{130, 14, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		level := p.LevelFor(tt.lines)
		assert.Equal(t, tt.level, level, "lines %d", tt.lines)
		assert.Equal(t, tt.interval, p.IntervalFor(level), "lines %d", tt.lines)
	}
}

func TestPolicyApply(t *testing.T) {
	p := DefaultConfig().Policy()
	start := p.Start()
	assert.Equal(t, Progress{Level: 1, Interval: 700 * time.Millisecond}, start)

	assert.Equal(t, start, p.Apply(start, 0))

	prev := Progress{Score: 50, Lines: 9, Level: 1, Interval: 700 * time.Millisecond}
	next := p.Apply(prev, 4)
	assert.Equal(t, 850, next.Score, "points use the level before the clear")
	assert.Equal(t, 13, next.Lines)
	assert.Equal(t, 2, next.Level)
	assert.Equal(t, 650*time.Millisecond, next.Interval)
}

func TestPolicyFixedSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeedStep = 0
	p := cfg.Policy()
	assert.Equal(t, 700*time.Millisecond, p.IntervalFor(20))
}
