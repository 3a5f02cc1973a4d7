package dto

import "github.com/salestrack/sales-service/internal/domain"

// AdminLoginRequest payload for admin console login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminAuthResponse carries the session token. ExpiresIn is milliseconds.
type AdminAuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// ClientAuthRequest payload for staff token exchange.
type ClientAuthRequest struct {
	TrackingID string `json:"trackingId"`
}

// ClientAuthResponse carries the stateless token and the embedded identity.
type ClientAuthResponse struct {
	Token     string                `json:"token"`
	User      domain.ClientIdentity `json:"user"`
	IssuedAt  int64                 `json:"iat"`
	ExpiresAt int64                 `json:"exp"`
}
