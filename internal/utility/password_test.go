package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	require.NotEmpty(t, salt)

	hash := HashPassword("MatKhau@123", salt)
	require.NotEmpty(t, hash)

	assert.True(t, ComparePassword("MatKhau@123", salt, hash))
	assert.False(t, ComparePassword("MatKhauSai@123", salt, hash))
}

func TestHashPassword_CungMatKhauKhacSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	salt2, err := GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, salt1, salt2, "Hai lần sinh salt phải khác nhau")

	assert.NotEqual(t, HashPassword("MatKhau@123", salt1), HashPassword("MatKhau@123", salt2),
		"Cùng mật khẩu với salt khác phải ra hash khác")
}

func TestHashPassword_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	assert.Equal(t, HashPassword("MatKhau@123", salt), HashPassword("MatKhau@123", salt))
}
