package models

// LoginRequest is the viewer login payload. The dashboard has a single shared
// credential, so there is no user identity beyond the password itself.
type LoginRequest struct {
	Password string `json:"password" binding:"required" example:"letmein"`
}

// TokenResponse wraps the issued viewer token.
type TokenResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn string `json:"expires_in" example:"86400"`
	TokenType string `json:"token_type" example:"Bearer"`
}
