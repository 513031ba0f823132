package model

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// User represents an application user
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserName  string    `json:"user_name"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserClaims are the JWT claims carried by access tokens
type UserClaims struct {
	jwt.StandardClaims
	UserName string `json:"user_name"`
}
