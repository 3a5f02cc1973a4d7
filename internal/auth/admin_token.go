package auth

// AdminClaims is the payload of an admin session token. Expiry is tracked
// server-side next to the stored token, so the payload carries none; iat
// makes each issuance distinct so a re-login rotates the stored value.
type AdminClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IssuedAt int64  `json:"iat"`
}

// IssueAdminToken signs a session token for the given admin account. The
// returned string is persisted to the credential row by the caller; the row
// is what makes the token verifiable.
func IssueAdminToken(id, username string, issuedAt int64, secret []byte) (string, error) {
	claims := AdminClaims{ID: id, Username: username, Role: "admin", IssuedAt: issuedAt}
	return encodeToken(claims, secret)
}
