package models

import "github.com/google/uuid"

// Session is the identity carried by a signed session token.
type Session struct {
	UserID    uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt int64     `json:"expiresAt"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

type SignInResult struct {
	Token    string  `json:"token"`
	Session  Session `json:"user"`
	Redirect string  `json:"redirect"`
}
