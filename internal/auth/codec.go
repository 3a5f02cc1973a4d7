package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Token header constants. Every token this service issues carries the same
// fixed header.
const (
	headerAlgorithm = "HS256"
	headerType      = "JWT"
)

// Header is the first token segment.
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// EncodeSegment base64url-encodes raw bytes with padding stripped.
func EncodeSegment(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

// EncodeJSON serializes a value to JSON and encodes it as a token segment.
func EncodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal segment: %w", err)
	}
	return EncodeSegment(data), nil
}

// DecodeSegment reverses EncodeSegment, restoring padding to the next
// multiple of four. A segment length of 4n+1 cannot come from any input and
// is rejected outright, as are non-alphabet characters.
func DecodeSegment(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 1:
		return nil, ErrMalformedSegment
	case 2:
		s += "=="
	case 3:
		s += "="
	}
	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedSegment
	}
	return data, nil
}

// Sign computes the HMAC-SHA256 of message keyed by secret. Deterministic.
func Sign(message string, secret []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// VerifySignature recomputes the signature and compares in constant time.
// It never fails with an error; a mismatch is simply false.
func VerifySignature(message string, signature []byte, secret []byte) bool {
	return hmac.Equal(Sign(message, secret), signature)
}

// encodeToken assembles header.payload.signature for the given claims.
func encodeToken(claims any, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	headerSeg, err := EncodeJSON(Header{Algorithm: headerAlgorithm, Type: headerType})
	if err != nil {
		return "", err
	}
	payloadSeg, err := EncodeJSON(claims)
	if err != nil {
		return "", err
	}
	signingInput := headerSeg + "." + payloadSeg
	return signingInput + "." + EncodeSegment(Sign(signingInput, secret)), nil
}
