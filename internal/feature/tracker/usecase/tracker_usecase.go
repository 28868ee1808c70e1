// Package usecase implements the tracker business rules: input validation and defaults.
// Ownership is enforced by the repository, inside the same transaction as each read or write.
package usecase

import (
	"context"
	"regexp"
	"strings"

	"goal_tracker/internal/feature/tracker/domain/entity"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TrackerRepository persists tracks, goals and tasks scoped to their owner.
// Every method returns the matching Err*NotFound when the target record does not
// exist or is not reachable from userID through user→track→goal→task.
type TrackerRepository interface {
	ListTracks(ctx context.Context, userID int64) ([]entity.Track, error)
	CreateTrack(ctx context.Context, userID int64, in entity.NewTrack) (*entity.Track, error)
	UpdateTrack(ctx context.Context, userID, trackID int64, patch entity.TrackPatch) (*entity.Track, error)
	// DeleteTrack also removes the track's goals and their tasks.
	DeleteTrack(ctx context.Context, userID, trackID int64) error

	ListGoals(ctx context.Context, userID, trackID int64) ([]entity.Goal, error)
	CreateGoal(ctx context.Context, userID int64, in entity.NewGoal) (*entity.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID int64, patch entity.GoalPatch) (*entity.Goal, error)
	// DeleteGoal also removes the goal's tasks.
	DeleteGoal(ctx context.Context, userID, goalID int64) error

	ListTasks(ctx context.Context, userID, goalID int64) ([]entity.Task, error)
	CreateTask(ctx context.Context, userID int64, in entity.NewTask) (*entity.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, patch entity.TaskPatch) (*entity.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// TrackInput is the client input for a new track. Nil optional fields take defaults.
type TrackInput struct {
	Name        string
	Description *string
	Color       *string
}

// GoalInput is the client input for a new goal.
type GoalInput struct {
	TrackID      int64
	Title        string
	Description  *string
	TargetValue  *int
	CurrentValue *int
	Unit         *string
}

// TaskInput is the client input for a new task.
type TaskInput struct {
	GoalID      int64
	Title       string
	Description *string
}

// trackerUsecase implements the tracker operations.
type trackerUsecase struct {
	repo TrackerRepository
}

// NewTrackerUsecase creates a trackerUsecase.
func NewTrackerUsecase(repo TrackerRepository) *trackerUsecase {
	return &trackerUsecase{repo: repo}
}

// ListTracks returns the user's tracks in creation order.
func (u *trackerUsecase) ListTracks(ctx context.Context, userID int64) ([]entity.Track, error) {
	return u.repo.ListTracks(ctx, userID)
}

// CreateTrack validates in, applies defaults and stores the track.
func (u *trackerUsecase) CreateTrack(ctx context.Context, userID int64, in TrackInput) (*entity.Track, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrTrackNameRequired
	}
	color := entity.DefaultTrackColor
	if in.Color != nil {
		color = strings.TrimSpace(*in.Color)
		if !colorPattern.MatchString(color) {
			return nil, ErrInvalidColor
		}
	}
	return u.repo.CreateTrack(ctx, userID, entity.NewTrack{
		Name:        name,
		Description: valueOr(in.Description, ""),
		Color:       color,
	})
}

// UpdateTrack validates the set fields of patch and applies it.
func (u *trackerUsecase) UpdateTrack(ctx context.Context, userID, trackID int64, patch entity.TrackPatch) (*entity.Track, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrTrackNameRequired
		}
		patch.Name = &name
	}
	if patch.Color != nil {
		color := strings.TrimSpace(*patch.Color)
		if !colorPattern.MatchString(color) {
			return nil, ErrInvalidColor
		}
		patch.Color = &color
	}
	return u.repo.UpdateTrack(ctx, userID, trackID, patch)
}

// DeleteTrack removes a track with its goals and tasks.
func (u *trackerUsecase) DeleteTrack(ctx context.Context, userID, trackID int64) error {
	return u.repo.DeleteTrack(ctx, userID, trackID)
}

// ListGoals returns the goals of one of the user's tracks.
func (u *trackerUsecase) ListGoals(ctx context.Context, userID, trackID int64) ([]entity.Goal, error) {
	return u.repo.ListGoals(ctx, userID, trackID)
}

// CreateGoal validates in, applies defaults and stores the goal under its track.
func (u *trackerUsecase) CreateGoal(ctx context.Context, userID int64, in GoalInput) (*entity.Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrGoalTitleRequired
	}
	target := valueOr(in.TargetValue, entity.DefaultTargetValue)
	current := valueOr(in.CurrentValue, 0)
	if target < 0 || current < 0 {
		return nil, ErrNegativeValue
	}
	unit := entity.DefaultUnit
	if in.Unit != nil && strings.TrimSpace(*in.Unit) != "" {
		unit = strings.TrimSpace(*in.Unit)
	}
	return u.repo.CreateGoal(ctx, userID, entity.NewGoal{
		TrackID:      in.TrackID,
		Title:        title,
		Description:  valueOr(in.Description, ""),
		TargetValue:  target,
		CurrentValue: current,
		Unit:         unit,
	})
}

// UpdateGoal validates the set fields of patch and applies it.
func (u *trackerUsecase) UpdateGoal(ctx context.Context, userID, goalID int64, patch entity.GoalPatch) (*entity.Goal, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrGoalTitleRequired
		}
		patch.Title = &title
	}
	if (patch.TargetValue != nil && *patch.TargetValue < 0) || (patch.CurrentValue != nil && *patch.CurrentValue < 0) {
		return nil, ErrNegativeValue
	}
	if patch.Unit != nil {
		unit := strings.TrimSpace(*patch.Unit)
		if unit == "" {
			return nil, ErrUnitRequired
		}
		patch.Unit = &unit
	}
	return u.repo.UpdateGoal(ctx, userID, goalID, patch)
}

// DeleteGoal removes a goal with its tasks.
func (u *trackerUsecase) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	return u.repo.DeleteGoal(ctx, userID, goalID)
}

// ListTasks returns the tasks of one of the user's goals.
func (u *trackerUsecase) ListTasks(ctx context.Context, userID, goalID int64) ([]entity.Task, error) {
	return u.repo.ListTasks(ctx, userID, goalID)
}

// CreateTask validates in and stores an uncompleted task under its goal.
func (u *trackerUsecase) CreateTask(ctx context.Context, userID int64, in TaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTaskTitleRequired
	}
	return u.repo.CreateTask(ctx, userID, entity.NewTask{
		GoalID:      in.GoalID,
		Title:       title,
		Description: valueOr(in.Description, ""),
	})
}

// UpdateTask validates the set fields of patch and applies it.
func (u *trackerUsecase) UpdateTask(ctx context.Context, userID, taskID int64, patch entity.TaskPatch) (*entity.Task, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTaskTitleRequired
		}
		patch.Title = &title
	}
	return u.repo.UpdateTask(ctx, userID, taskID, patch)
}

// DeleteTask removes a task.
func (u *trackerUsecase) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return u.repo.DeleteTask(ctx, userID, taskID)
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
