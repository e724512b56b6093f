package auth

import "time"

// SessionRecord is the persisted shape of an authenticated user. It is
// what survives a reload; nothing else does.
type SessionRecord struct {
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	Favorites []string `json:"favorites,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	PhotoURL string `json:"photo_url"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
