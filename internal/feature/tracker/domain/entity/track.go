// Package entity defines the track, goal and task records of the tracker feature.
// A user owns tracks, a track owns goals, and a goal owns tasks.
package entity

import "time"

// DefaultTrackColor is used when a track is created without a color.
const DefaultTrackColor = "#3B82F6"

// Track is a life area the user is working on.
type Track struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
}

// NewTrack holds the validated fields of a track about to be inserted.
type NewTrack struct {
	Name        string
	Description string
	Color       string
}

// TrackPatch is a partial update; nil fields are left unchanged.
type TrackPatch struct {
	Name        *string
	Description *string
	Color       *string
}

// Apply copies the set fields of p onto t.
func (p TrackPatch) Apply(t *Track) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
}
