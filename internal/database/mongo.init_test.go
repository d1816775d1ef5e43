package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	configs := parseIndexTag("unique,sparse")
	require.Len(t, configs, 1)
	_, hasUnique := configs[0]["unique"]
	_, hasSparse := configs[0]["sparse"]
	assert.True(t, hasUnique)
	assert.True(t, hasSparse)
}

func TestParseIndexTag_SingleGiamDan(t *testing.T) {
	configs := parseIndexTag("single:-1")
	require.Len(t, configs, 1)
	assert.Equal(t, "-1", configs[0]["single"])
}

func TestParseSingleOrder(t *testing.T) {
	// single:-1 phải ra index giảm dần, còn lại mặc định tăng dần
	assert.Equal(t, -1, parseSingleOrder("-1"))
	assert.Equal(t, 1, parseSingleOrder("1"))
	assert.Equal(t, 1, parseSingleOrder(""))
}
