// Package adapters provides the gorm implementation of the tracker repository.
// Every statement is scoped by the owning user; ownership and the change it guards
// run inside one transaction.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"goal_tracker/internal/feature/tracker/domain/entity"
	"goal_tracker/internal/feature/tracker/usecase"
	"goal_tracker/internal/platform/db"
	"goal_tracker/internal/shared/apperr"
)

const byCreation = "created_at ASC, id ASC"

// trackerSQL implements usecase.TrackerRepository.
type trackerSQL struct {
	store *db.Store
}

var _ usecase.TrackerRepository = (*trackerSQL)(nil)

// NewTrackerSQL creates a trackerSQL bound to store.
func NewTrackerSQL(store *db.Store) *trackerSQL {
	return &trackerSQL{store: store}
}

// classify maps a missing row to notFound and anything else to a storage error.
func classify(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperr.Storage(err)
}

func ownedTrack(ctx context.Context, q db.Querier, trackID, userID int64) (entity.Track, error) {
	var m trackModel
	err := q.DB(ctx).
		Where("id = ? AND user_id = ?", trackID, userID).
		Take(&m).Error
	if err != nil {
		return entity.Track{}, classify(err, usecase.ErrTrackNotFound)
	}
	return m.toEntity(), nil
}

func ownedGoal(ctx context.Context, q db.Querier, goalID, userID int64) (entity.Goal, error) {
	var m goalModel
	err := q.DB(ctx).
		Select("goals.*").
		Joins("JOIN tracks ON tracks.id = goals.track_id").
		Where("goals.id = ? AND tracks.user_id = ?", goalID, userID).
		Take(&m).Error
	if err != nil {
		return entity.Goal{}, classify(err, usecase.ErrGoalNotFound)
	}
	return m.toEntity(), nil
}

func ownedTask(ctx context.Context, q db.Querier, taskID, userID int64) (entity.Task, error) {
	var m taskModel
	err := q.DB(ctx).
		Select("tasks.*").
		Joins("JOIN goals ON goals.id = tasks.goal_id").
		Joins("JOIN tracks ON tracks.id = goals.track_id").
		Where("tasks.id = ? AND tracks.user_id = ?", taskID, userID).
		Take(&m).Error
	if err != nil {
		return entity.Task{}, classify(err, usecase.ErrTaskNotFound)
	}
	return m.toEntity(), nil
}

func (r *trackerSQL) ListTracks(ctx context.Context, userID int64) ([]entity.Track, error) {
	var rows []trackModel
	err := r.store.DB(ctx).
		Where("user_id = ?", userID).
		Order(byCreation).
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Storage(err)
	}
	out := make([]entity.Track, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *trackerSQL) CreateTrack(ctx context.Context, userID int64, in entity.NewTrack) (*entity.Track, error) {
	var out entity.Track
	err := r.store.Transaction(ctx, func(q db.Querier) error {
		created, err := InsertTrack(ctx, q, userID, in)
		out = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// InsertTrack inserts a track through q and returns the stored row.
func InsertTrack(ctx context.Context, q db.Querier, userID int64, in entity.NewTrack) (entity.Track, error) {
	m := trackModel{
		UserID:      userID,
		Name:        in.Name,
		Description: &in.Description,
		Color:       &in.Color,
	}
	if err := q.DB(ctx).Create(&m).Error; err != nil {
		return entity.Track{}, apperr.Storage(err)
	}
	return ownedTrack(ctx, q, m.ID, userID)
}

func (r *trackerSQL) UpdateTrack(ctx context.Context, userID, trackID int64, patch entity.TrackPatch) (*entity.Track, error) {
	var out entity.Track
	err := r.store.Transaction(ctx, func(q db.Querier) error {
		t, err := ownedTrack(ctx, q, trackID, userID)
		if err != nil {
			return err
		}
		patch.Apply(&t)
		err = q.DB(ctx).Model(&trackModel{}).Where("id = ?", t.ID).Updates(map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"color":       t.Color,
		}).Error
		if err != nil {
			return apperr.Storage(err)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *trackerSQL) DeleteTrack(ctx context.Context, userID, trackID int64) error {
	return r.store.Transaction(ctx, func(q db.Querier) error {
		if _, err := ownedTrack(ctx, q, trackID, userID); err != nil {
			return err
		}
		goalIDs := q.DB(ctx).Model(&goalModel{}).Select("id").Where("track_id = ?", trackID)
		if err := q.DB(ctx).Where("goal_id IN (?)", goalIDs).Delete(&taskModel{}).Error; err != nil {
			return apperr.Storage(err)
		}
		if err := q.DB(ctx).Where("track_id = ?", trackID).Delete(&goalModel{}).Error; err != nil {
			return apperr.Storage(err)
		}
		return apperr.Storage(q.DB(ctx).Where("id = ?", trackID).Delete(&trackModel{}).Error)
	})
}

func (r *trackerSQL) ListGoals(ctx context.Context, userID, trackID int64) ([]entity.Goal, error) {
	var out []entity.Goal
	err := r.store.Transaction(ctx, func(q db.Querier) error {
		if _, err := ownedTrack(ctx, q, trackID, userID); err != nil {
			return err
		}
		var rows []goalModel
		err := q.DB(ctx).
			Where("track_id = ?", trackID).
			Order(byCreation).
			Find(&rows).Error
		if err != nil {
			return apperr.Storage(err)
		}
		out = make([]entity.Goal, 0, len(rows))
		for _, m := range rows {
			out = append(out, m.toEntity())
		}
		return nil
	})
	return out, err
}

func (r *trackerSQL) CreateGoal(ctx context.Context, userID int64, in entity.NewGoal) (*entity.Goal, error) {
	var out entity.Goal
	err := r.store.Transaction(ctx, func(q db.Querier) error {
		if _, err := ownedTrack(ctx, q, in.TrackID, userID); err != nil {
			return err
		}
		created, err := InsertGoal(ctx, q, userID, in)
		out = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// InsertGoal inserts a goal through q and returns the stored row. The caller is
// responsible for checking that in.TrackID belongs to userID.
func InsertGoal(ctx context.Context, q db.Querier, userID int64, in entity.NewGoal) (entity.Goal, error) {
	m := goalModel{
		TrackID:      in.TrackID,
		Title:        in.Title,
		Description:  &in.Description,
		TargetValue:  &in.TargetValue,
		CurrentValue: &in.CurrentValue,
		Unit:         &in.Unit,
	}
	if err := q.DB(ctx).Create(&m).Error; err != nil {
		return entity.Goal{}, apperr.Storage(err)
	}
	return ownedGoal(ctx, q, m.ID, userID)
}

func (r *trackerSQL) UpdateGoal(ctx context.Context, userID, goalID int64, patch entity.GoalPatch) (*entity.Goal, error) {
	var out entity.Goal
	err := r.store.Transaction(ctx, func(q db.Querier) error {
		g, err := ownedGoal(ctx, q, goalID, userID)
		if err != nil {
			return err
		}
		patch.Apply(&g)
		err = q.DB(ctx).Model(&goalModel{}).Where("id = ?", g.ID).Updates(map[string]any{
			"title":         g.Title,
			"description":   g.Description,
			"target_value":  g.TargetValue,
			"current_value": g.CurrentValue,
			"unit":          g.Unit,
		}).Error
		if err != nil {
			return apperr.Storage(err)
		}
		out = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *trackerSQL) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	return r.store.Transaction(ctx, func(q db.Querier) error {
		if _, err := ownedGoal(ctx, q, goalID, userID); err != nil {
			return err
		}
		if err := q.DB(ctx).Where("goal_id = ?", goalID).Delete(&taskModel{}).Error; err != nil {
			return apperr.Storage(err)
		}
		return apperr.Storage(q.DB(ctx).Where("id = ?", goalID).Delete(&goalModel{}).Error)
	})
}

func (r *trackerSQL) ListTasks(ctx context.Context, userID, goalID int64) ([]entity.Task, error) {
	var out []entity.Task
	err := r.store.Transaction(ctx, func(q db.Querier) error {
		if _, err := ownedGoal(ctx, q, goalID, userID); err != nil {
			return err
		}
		var rows []taskModel
		err := q.DB(ctx).
			Where("goal_id = ?", goalID).
			Order(byCreation).
			Find(&rows).Error
		if err != nil {
			return apperr.Storage(err)
		}
		out = make([]entity.Task, 0, len(rows))
		for _, m := range rows {
			out = append(out, m.toEntity())
		}
		return nil
	})
	return out, err
}

func (r *trackerSQL) CreateTask(ctx context.Context, userID int64, in entity.NewTask) (*entity.Task, error) {
	var out entity.Task
	err := r.store.Transaction(ctx, func(q db.Querier) error {
		if _, err := ownedGoal(ctx, q, in.GoalID, userID); err != nil {
			return err
		}
		created, err := InsertTask(ctx, q, userID, in)
		out = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// InsertTask inserts an uncompleted task through q and returns the stored row.
// The caller is responsible for checking that in.GoalID belongs to userID.
func InsertTask(ctx context.Context, q db.Querier, userID int64, in entity.NewTask) (entity.Task, error) {
	completed := false
	m := taskModel{
		GoalID:      in.GoalID,
		Title:       in.Title,
		Description: &in.Description,
		Completed:   &completed,
	}
	if err := q.DB(ctx).Create(&m).Error; err != nil {
		return entity.Task{}, apperr.Storage(err)
	}
	return ownedTask(ctx, q, m.ID, userID)
}

func (r *trackerSQL) UpdateTask(ctx context.Context, userID, taskID int64, patch entity.TaskPatch) (*entity.Task, error) {
	var out entity.Task
	err := r.store.Transaction(ctx, func(q db.Querier) error {
		t, err := ownedTask(ctx, q, taskID, userID)
		if err != nil {
			return err
		}
		patch.Apply(&t)
		err = q.DB(ctx).Model(&taskModel{}).Where("id = ?", t.ID).Updates(map[string]any{
			"title":       t.Title,
			"description": t.Description,
			"completed":   t.Completed,
		}).Error
		if err != nil {
			return apperr.Storage(err)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *trackerSQL) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return r.store.Transaction(ctx, func(q db.Querier) error {
		if _, err := ownedTask(ctx, q, taskID, userID); err != nil {
			return err
		}
		return apperr.Storage(q.DB(ctx).Where("id = ?", taskID).Delete(&taskModel{}).Error)
	})
}
