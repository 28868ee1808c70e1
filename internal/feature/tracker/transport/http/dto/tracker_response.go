package dto

import (
	"time"

	"goal_tracker/internal/feature/tracker/domain/entity"
)

// TrackRes is the JSON form of a track.
type TrackRes struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// GoalRes is the JSON form of a goal.
type GoalRes struct {
	ID           int64     `json:"id"`
	TrackID      int64     `json:"track_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TargetValue  int       `json:"target_value"`
	CurrentValue int       `json:"current_value"`
	Unit         string    `json:"unit"`
	CreatedAt    time.Time `json:"created_at"`
}

// TaskRes is the JSON form of a task.
type TaskRes struct {
	ID          int64     `json:"id"`
	GoalID      int64     `json:"goal_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTrackRes(t entity.Track) TrackRes {
	return TrackRes{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		Description: t.Description,
		Color:       t.Color,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

func NewGoalRes(g entity.Goal) GoalRes {
	return GoalRes{
		ID:           g.ID,
		TrackID:      g.TrackID,
		Title:        g.Title,
		Description:  g.Description,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		CreatedAt:    g.CreatedAt.UTC(),
	}
}

func NewTaskRes(t entity.Task) TaskRes {
	return TaskRes{
		ID:          t.ID,
		GoalID:      t.GoalID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

// Lists are always encoded as arrays, never null.

func NewTrackList(ts []entity.Track) []TrackRes {
	out := make([]TrackRes, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTrackRes(t))
	}
	return out
}

func NewGoalList(gs []entity.Goal) []GoalRes {
	out := make([]GoalRes, 0, len(gs))
	for _, g := range gs {
		out = append(out, NewGoalRes(g))
	}
	return out
}

func NewTaskList(ts []entity.Task) []TaskRes {
	out := make([]TaskRes, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTaskRes(t))
	}
	return out
}
