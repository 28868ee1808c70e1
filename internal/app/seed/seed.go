// Package seed inserts the demo account used by the client's sample login.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authadapters "goal_tracker/internal/feature/auth/adapters"
	authusecase "goal_tracker/internal/feature/auth/usecase"
	trackeradapters "goal_tracker/internal/feature/tracker/adapters"
	"goal_tracker/internal/feature/tracker/domain/entity"
	"goal_tracker/internal/platform/db"
)

const (
	DemoEmail    = "rob.vandijk@example.com"
	DemoPassword = "password123"
	DemoName     = "Rob van Dijk"
)

// Hasher hashes the demo password.
type Hasher interface {
	Hash(password string) (string, error)
}

type seedGoal struct {
	goal  entity.NewGoal
	tasks []entity.NewTask
}

type seedTrack struct {
	track entity.NewTrack
	goals []seedGoal
}

var demoTracks = []seedTrack{
	{
		track: entity.NewTrack{Name: "Morning Routine", Description: "Daily morning activities", Color: "#10B981"},
		goals: []seedGoal{{
			goal: entity.NewGoal{
				Title:       "Wake up early",
				Description: "Consistent 6 AM wake-up time",
				TargetValue: 7,
				Unit:        "days per week",
			},
			tasks: []entity.NewTask{
				{Title: "Set alarm for 6 AM", Description: "Use consistent alarm time"},
				{Title: "Get out of bed immediately", Description: "No snoozing allowed"},
				{Title: "Drink water first thing", Description: "Hydrate upon waking"},
			},
		}},
	},
	{track: entity.NewTrack{Name: "Exercise & Health", Description: "Physical fitness and wellness", Color: "#EF4444"}},
	{track: entity.NewTrack{Name: "Work Productivity", Description: "Professional tasks and goals", Color: "#3B82F6"}},
	{track: entity.NewTrack{Name: "Learning & Growth", Description: "Personal development", Color: "#8B5CF6"}},
	{track: entity.NewTrack{Name: "Social Connections", Description: "Relationships and networking", Color: "#F59E0B"}},
	{track: entity.NewTrack{Name: "Creative Projects", Description: "Artistic and creative pursuits", Color: "#EC4899"}},
	{track: entity.NewTrack{Name: "Evening Wind-down", Description: "End of day routines", Color: "#6366F1"}},
}

// SeedIfEmpty inserts the demo user with its tracks, goal and tasks unless the demo user exists.
// It reports whether anything was inserted.
func SeedIfEmpty(ctx context.Context, store *db.Store, hasher Hasher) (bool, error) {
	hash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash demo password: %w", err)
	}

	inserted := false
	err = store.Transaction(ctx, func(q db.Querier) error {
		exists, err := demoUserExists(ctx, q)
		if err != nil || exists {
			return err
		}

		u, err := authadapters.InsertUser(ctx, q, DemoEmail, hash, DemoName)
		if err != nil {
			return err
		}
		for _, st := range demoTracks {
			tr, err := trackeradapters.InsertTrack(ctx, q, u.ID, st.track)
			if err != nil {
				return err
			}
			for _, sg := range st.goals {
				sg.goal.TrackID = tr.ID
				g, err := trackeradapters.InsertGoal(ctx, q, u.ID, sg.goal)
				if err != nil {
					return err
				}
				for _, nt := range sg.tasks {
					nt.GoalID = g.ID
					if _, err := trackeradapters.InsertTask(ctx, q, u.ID, nt); err != nil {
						return err
					}
				}
			}
		}
		inserted = true
		return nil
	})
	if errors.Is(err, authusecase.ErrEmailAlreadyExists) {
		slog.Info("demo data inserted concurrently, skipping")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to seed demo data: %w", err)
	}
	if inserted {
		slog.Info("demo data seeded", "email", DemoEmail, "tracks", len(demoTracks))
	}
	return inserted, nil
}

func demoUserExists(ctx context.Context, q db.Querier) (bool, error) {
	var n int64
	if err := q.DB(ctx).Table("users").Where("email = ?", DemoEmail).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
