package entity

import "time"

// Goal defaults.
const (
	DefaultTargetValue = 1
	DefaultUnit        = "times"
)

// Goal is a measurable target inside a track.
type Goal struct {
	ID           int64
	TrackID      int64
	Title        string
	Description  string
	TargetValue  int
	CurrentValue int
	Unit         string
	CreatedAt    time.Time
}

// NewGoal holds the validated fields of a goal about to be inserted.
type NewGoal struct {
	TrackID      int64
	Title        string
	Description  string
	TargetValue  int
	CurrentValue int
	Unit         string
}

// GoalPatch is a partial update; nil fields are left unchanged.
type GoalPatch struct {
	Title        *string
	Description  *string
	TargetValue  *int
	CurrentValue *int
	Unit         *string
}

// Apply copies the set fields of p onto g.
func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.TargetValue != nil {
		g.TargetValue = *p.TargetValue
	}
	if p.CurrentValue != nil {
		g.CurrentValue = *p.CurrentValue
	}
	if p.Unit != nil {
		g.Unit = *p.Unit
	}
}
