package adapters

import (
	"time"

	"goal_tracker/internal/feature/tracker/domain/entity"
)

// The optional columns are nullable in tables created by the first release, and
// CREATE TABLE IF NOT EXISTS never tightens them. They are read through pointers
// and a NULL falls back to the column's default.

type trackModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	UserID      int64      `gorm:"column:user_id"`
	Name        string     `gorm:"column:name"`
	Description *string    `gorm:"column:description"`
	Color       *string    `gorm:"column:color"`
	CreatedAt   *time.Time `gorm:"column:created_at;<-:false"`
}

func (trackModel) TableName() string {
	return "tracks"
}

func (m trackModel) toEntity() entity.Track {
	return entity.Track{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: valueOr(m.Description, ""),
		Color:       valueOr(m.Color, entity.DefaultTrackColor),
		CreatedAt:   valueOr(m.CreatedAt, time.Time{}),
	}
}

type goalModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	TrackID      int64      `gorm:"column:track_id"`
	Title        string     `gorm:"column:title"`
	Description  *string    `gorm:"column:description"`
	TargetValue  *int       `gorm:"column:target_value"`
	CurrentValue *int       `gorm:"column:current_value"`
	Unit         *string    `gorm:"column:unit"`
	CreatedAt    *time.Time `gorm:"column:created_at;<-:false"`
}

func (goalModel) TableName() string {
	return "goals"
}

func (m goalModel) toEntity() entity.Goal {
	return entity.Goal{
		ID:           m.ID,
		TrackID:      m.TrackID,
		Title:        m.Title,
		Description:  valueOr(m.Description, ""),
		TargetValue:  valueOr(m.TargetValue, entity.DefaultTargetValue),
		CurrentValue: valueOr(m.CurrentValue, 0),
		Unit:         valueOr(m.Unit, entity.DefaultUnit),
		CreatedAt:    valueOr(m.CreatedAt, time.Time{}),
	}
}

type taskModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	GoalID      int64      `gorm:"column:goal_id"`
	Title       string     `gorm:"column:title"`
	Description *string    `gorm:"column:description"`
	Completed   *bool      `gorm:"column:completed"`
	CreatedAt   *time.Time `gorm:"column:created_at;<-:false"`
}

func (taskModel) TableName() string {
	return "tasks"
}

func (m taskModel) toEntity() entity.Task {
	return entity.Task{
		ID:          m.ID,
		GoalID:      m.GoalID,
		Title:       m.Title,
		Description: valueOr(m.Description, ""),
		Completed:   valueOr(m.Completed, false),
		CreatedAt:   valueOr(m.CreatedAt, time.Time{}),
	}
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
