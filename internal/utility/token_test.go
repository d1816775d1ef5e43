package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	tokenMap, err := CreateToken("secret-test", "695f7b38cbf62dba0fb094cb", "64bf1a2c", "42")
	require.NoError(t, err)
	require.NotEmpty(t, tokenMap["token"])

	userID, err := ParseToken("secret-test", tokenMap["token"])
	require.NoError(t, err)
	assert.Equal(t, "695f7b38cbf62dba0fb094cb", userID)
}

func TestParseToken_SaiSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret-dung", "695f7b38cbf62dba0fb094cb", "64bf1a2c", "42")
	require.NoError(t, err)

	_, err = ParseToken("secret-sai", tokenMap["token"])
	require.Error(t, err)
}

func TestParseToken_TokenRac(t *testing.T) {
	_, err := ParseToken("secret-test", "khong.phai.jwt")
	require.Error(t, err)
}
