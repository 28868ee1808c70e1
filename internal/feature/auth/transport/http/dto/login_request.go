// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq is the body of POST /api/auth/login. Presence is checked by the usecase
// so that a missing field produces the same message as an empty one.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterReq is the body of POST /api/auth/register.
type RegisterReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}
