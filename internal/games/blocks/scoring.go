package blocks

import "time"

// Base points for a single cleared row; each extra row doubles the award.
const baseLinePoints = 100

// ScoreDelta returns the points for clearing n rows at once on the given
// level: 100, 200, 400, 800 times the level for 1-4 rows, 0 for none.
func ScoreDelta(cleared, level int) int {
	if cleared <= 0 {
		return 0
	}
	return baseLinePoints * (1 << (cleared - 1)) * level
}

// Policy maps cleared lines to level and fall speed.
type Policy struct {
	InitialInterval time.Duration
	SpeedStep       time.Duration // interval reduction per level
	SpeedFloor      time.Duration
	LinesPerLevel   int
}

// LevelFor returns the level reached after totalLines cleared rows.
func (p Policy) LevelFor(totalLines int) int {
	return 1 + totalLines/p.LinesPerLevel
}

// IntervalFor returns the fall interval on the given level.
func (p Policy) IntervalFor(level int) time.Duration {
	return max(p.SpeedFloor, p.InitialInterval-time.Duration(level-1)*p.SpeedStep)
}

// Progress is the part of the session state the policy owns.
type Progress struct {
	Score    int
	Lines    int
	Level    int
	Interval time.Duration
}

// Start returns the progress of a fresh session.
func (p Policy) Start() Progress {
	return Progress{Level: 1, Interval: p.IntervalFor(1)}
}

// Apply folds one lock event into prev. The score uses the level before the
// event. A lock that clears nothing leaves progress untouched.
func (p Policy) Apply(prev Progress, cleared int) Progress {
	if cleared <= 0 {
		return prev
	}
	next := prev
	next.Score += ScoreDelta(cleared, prev.Level)
	next.Lines += cleared
	next.Level = p.LevelFor(next.Lines)
	next.Interval = p.IntervalFor(next.Level)
	return next
}
