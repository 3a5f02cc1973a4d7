package auth

import (
	"errors"
	"net/http"

	util "github.com/salestrack/sales-service/pkg/util"
)

// Sentinel errors for every way authentication can fail. Services return
// these; ToDomainError maps them to stable response codes at the edge.
var (
	ErrInvalidCredentials   = errors.New("auth: invalid credentials")
	ErrUnauthenticated      = errors.New("auth: missing or malformed bearer credentials")
	ErrInvalidToken         = errors.New("auth: invalid token")
	ErrExpiredToken         = errors.New("auth: token expired")
	ErrUnknownTrackingID    = errors.New("auth: unknown tracking id")
	ErrMalformedToken       = errors.New("auth: malformed token")
	ErrUnsupportedAlgorithm = errors.New("auth: unsupported signing algorithm")
	ErrBadSignature         = errors.New("auth: signature mismatch")
	ErrMalformedSegment     = errors.New("auth: malformed base64url segment")
	ErrMissingSecret        = errors.New("auth: signing secret not configured")

	errTokenLifetime = errors.New("auth: client token lifetime must be positive")
)

// ToDomainError converts auth sentinels into DomainErrors with machine-stable
// codes. Unknown errors pass through the generic mapper.
func ToDomainError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return util.NewDomainError("INVALID_CREDENTIALS", "invalid credentials", http.StatusUnauthorized, nil)
	case errors.Is(err, ErrUnauthenticated):
		return util.NewDomainError("UNAUTHENTICATED", "missing or malformed authorization header", http.StatusUnauthorized, nil)
	case errors.Is(err, ErrInvalidToken):
		return util.NewDomainError("INVALID_TOKEN", "invalid or revoked token", http.StatusUnauthorized, nil)
	case errors.Is(err, ErrExpiredToken):
		return util.NewDomainError("EXPIRED", "token expired", http.StatusUnauthorized, nil)
	case errors.Is(err, ErrUnknownTrackingID):
		return util.NewDomainError("NOT_FOUND", "tracking id not recognized", http.StatusNotFound, nil)
	case errors.Is(err, ErrMalformedToken), errors.Is(err, ErrMalformedSegment):
		return util.NewDomainError("MALFORMED_TOKEN", "token is malformed", http.StatusUnauthorized, nil)
	case errors.Is(err, ErrUnsupportedAlgorithm):
		return util.NewDomainError("UNSUPPORTED_ALGORITHM", "unsupported signing algorithm", http.StatusUnauthorized, nil)
	case errors.Is(err, ErrBadSignature):
		return util.NewDomainError("BAD_SIGNATURE", "token signature mismatch", http.StatusUnauthorized, nil)
	default:
		return util.MapError(err)
	}
}
