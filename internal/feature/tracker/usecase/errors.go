package usecase

import "goal_tracker/internal/shared/apperr"

// Not-found errors. A record owned by another user is reported exactly like a missing one.
var (
	ErrTrackNotFound = apperr.NotFound("Track not found")
	ErrGoalNotFound  = apperr.NotFound("Goal not found")
	ErrTaskNotFound  = apperr.NotFound("Task not found")
)

// Validation errors.
var (
	ErrTrackNameRequired = apperr.Validation("Track name is required")
	ErrInvalidColor      = apperr.Validation("Color must be a hex value like #3B82F6")
	ErrGoalTitleRequired = apperr.Validation("Goal title is required")
	ErrNegativeValue     = apperr.Validation("Goal values must be zero or greater")
	ErrUnitRequired      = apperr.Validation("Goal unit cannot be blank")
	ErrTaskTitleRequired = apperr.Validation("Task title is required")
)
