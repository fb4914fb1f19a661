// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// All four fields are required; Gin's binding tags enforce presence and email format.
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
