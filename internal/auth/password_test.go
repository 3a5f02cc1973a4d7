package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salestrack/sales-service/internal/auth"
)

func TestHashPassword(t *testing.T) {
	// hex(SHA-256("secret123" || "NACL"))
	assert.Equal(t,
		"d9e0287732afd2d2124b0a1e1db22910b4fcd52cf2cd7c6cd696fc131b9393cf",
		auth.HashPassword("secret123", "NACL"))

	// hex(SHA-256("pw" || "salty"))
	assert.Equal(t,
		"8b09886c19ccac599b11a50fe1016076369422e3f6a8d52c6fe30dc16fd01319",
		auth.HashPassword("pw", "salty"))
}

func TestHashPasswordSaltChangesDigest(t *testing.T) {
	assert.NotEqual(t,
		auth.HashPassword("secret123", "NACL"),
		auth.HashPassword("secret123", "KCL"))
	assert.NotEqual(t,
		auth.HashPassword("secret123", "NACL"),
		auth.HashPassword("secret124", "NACL"))

	// Deterministic for identical inputs.
	assert.Equal(t,
		auth.HashPassword("secret123", "NACL"),
		auth.HashPassword("secret123", "NACL"))
}
