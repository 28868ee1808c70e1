// Package handler provides the HTTP handlers for tracks, goals and tasks.
// Every route runs behind the auth middleware; the user id always comes from the token.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goal_tracker/internal/feature/tracker/domain/entity"
	"goal_tracker/internal/feature/tracker/transport/http/dto"
	"goal_tracker/internal/feature/tracker/usecase"
	"goal_tracker/internal/platform/http/httperr"
	jwtmw "goal_tracker/internal/platform/jwt"
	"goal_tracker/internal/shared/apperr"
)

// TrackerUsecase defines the tracker operations the handler needs.
type TrackerUsecase interface {
	ListTracks(ctx context.Context, userID int64) ([]entity.Track, error)
	CreateTrack(ctx context.Context, userID int64, in usecase.TrackInput) (*entity.Track, error)
	UpdateTrack(ctx context.Context, userID, trackID int64, patch entity.TrackPatch) (*entity.Track, error)
	DeleteTrack(ctx context.Context, userID, trackID int64) error

	ListGoals(ctx context.Context, userID, trackID int64) ([]entity.Goal, error)
	CreateGoal(ctx context.Context, userID int64, in usecase.GoalInput) (*entity.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID int64, patch entity.GoalPatch) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID int64) error

	ListTasks(ctx context.Context, userID, goalID int64) ([]entity.Task, error)
	CreateTask(ctx context.Context, userID int64, in usecase.TaskInput) (*entity.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, patch entity.TaskPatch) (*entity.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

var (
	errInvalidBody = apperr.Validation("Invalid request body")
	errInvalidID   = apperr.Validation("Invalid id")
	errNoUser      = apperr.Unauthorized("Token is invalid")
)

// TrackerHandler handles the /api/tracks, /api/goals and /api/tasks routes.
type TrackerHandler struct {
	uc TrackerUsecase
}

// NewTrackerHandler creates a TrackerHandler.
func NewTrackerHandler(uc TrackerUsecase) *TrackerHandler {
	return &TrackerHandler{uc: uc}
}

// ListTracks handles GET /api/tracks.
func (h *TrackerHandler) ListTracks(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	ts, err := h.uc.ListTracks(c.Request.Context(), userID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTrackList(ts))
}

// CreateTrack handles POST /api/tracks.
func (h *TrackerHandler) CreateTrack(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateTrackReq
	if !bind(c, &req) {
		return
	}
	t, err := h.uc.CreateTrack(c.Request.Context(), userID, usecase.TrackInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	slog.Info("track created", "user_id", userID, "track_id", t.ID)
	c.JSON(http.StatusCreated, dto.NewTrackRes(*t))
}

// UpdateTrack handles PATCH /api/tracks/:id.
func (h *TrackerHandler) UpdateTrack(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	trackID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTrackReq
	if !bind(c, &req) {
		return
	}
	t, err := h.uc.UpdateTrack(c.Request.Context(), userID, trackID, entity.TrackPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTrackRes(*t))
}

// DeleteTrack handles DELETE /api/tracks/:id.
func (h *TrackerHandler) DeleteTrack(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	trackID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteTrack(c.Request.Context(), userID, trackID); err != nil {
		httperr.Write(c, err)
		return
	}
	slog.Info("track deleted", "user_id", userID, "track_id", trackID)
	c.Status(http.StatusNoContent)
}

// ListGoals handles GET /api/goals?track_id=.
func (h *TrackerHandler) ListGoals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	trackID, ok := queryID(c, "track_id")
	if !ok {
		return
	}
	gs, err := h.uc.ListGoals(c.Request.Context(), userID, trackID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGoalList(gs))
}

// CreateGoal handles POST /api/goals.
func (h *TrackerHandler) CreateGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateGoalReq
	if !bind(c, &req) {
		return
	}
	g, err := h.uc.CreateGoal(c.Request.Context(), userID, usecase.GoalInput{
		TrackID:      req.TrackID,
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewGoalRes(*g))
}

// UpdateGoal handles PATCH /api/goals/:id.
func (h *TrackerHandler) UpdateGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	goalID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateGoalReq
	if !bind(c, &req) {
		return
	}
	g, err := h.uc.UpdateGoal(c.Request.Context(), userID, goalID, entity.GoalPatch{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGoalRes(*g))
}

// DeleteGoal handles DELETE /api/goals/:id.
func (h *TrackerHandler) DeleteGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	goalID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteGoal(c.Request.Context(), userID, goalID); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTasks handles GET /api/tasks?goal_id=.
func (h *TrackerHandler) ListTasks(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	goalID, ok := queryID(c, "goal_id")
	if !ok {
		return
	}
	ts, err := h.uc.ListTasks(c.Request.Context(), userID, goalID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskList(ts))
}

// CreateTask handles POST /api/tasks.
func (h *TrackerHandler) CreateTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateTaskReq
	if !bind(c, &req) {
		return
	}
	t, err := h.uc.CreateTask(c.Request.Context(), userID, usecase.TaskInput{
		GoalID:      req.GoalID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTaskRes(*t))
}

// UpdateTask handles PATCH /api/tasks/:id.
func (h *TrackerHandler) UpdateTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskReq
	if !bind(c, &req) {
		return
	}
	t, err := h.uc.UpdateTask(c.Request.Context(), userID, taskID, entity.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskRes(*t))
}

// DeleteTask handles DELETE /api/tasks/:id.
func (h *TrackerHandler) DeleteTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func requireUser(c *gin.Context) (int64, bool) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		httperr.Write(c, errNoUser)
	}
	return userID, ok
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.Warn("request validation failed", "path", c.FullPath(), "error", err, "remote_addr", c.ClientIP())
		httperr.Write(c, errInvalidBody)
		return false
	}
	return true
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil && id > 0
}

func pathID(c *gin.Context) (int64, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.Write(c, errInvalidID)
	}
	return id, ok
}

// queryID reads a required positive id from the query string.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		httperr.Write(c, apperr.Validation(name+" parameter required"))
		return 0, false
	}
	id, ok := parseID(raw)
	if !ok {
		httperr.Write(c, apperr.Validation(name+" must be a positive integer"))
	}
	return id, ok
}
