package dto

import "goal_tracker/internal/feature/auth/domain/entity"

// UserRes is the public view of a user. The password hash never leaves the server.
type UserRes struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthRes is returned by login and register.
type AuthRes struct {
	Token string  `json:"token"`
	User  UserRes `json:"user"`
}

// NewUserRes converts an entity.User.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Email: u.Email, Name: u.Name}
}
