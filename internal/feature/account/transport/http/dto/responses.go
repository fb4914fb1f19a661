// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

import "shop_backend/internal/feature/account/domain/entity"

// UserView is the public projection of a user returned by /login.
// It never contains the password hash.
type UserView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// NewUserView builds a UserView from a user entity.
func NewUserView(u *entity.User) UserView {
	return UserView{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		Username: u.Username,
	}
}

// SignupResp is the success response body for /signup.
type SignupResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginResp is the success response body for /login.
type LoginResp struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

// GoogleSignupResp is the success response body for /google-signup.
// User carries the full stored document (minus the password hash).
type GoogleSignupResp struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}
