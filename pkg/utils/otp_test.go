package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	require.NoError(t, err)
	require.Len(t, code, 6)

	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "expected digit, got %q", r)
	}
}

func TestGenerateOTP_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateOTP(6)
		require.NoError(t, err)
		seen[code] = true
	}
	// 20 identical draws from a million possibilities would mean a broken generator
	assert.Greater(t, len(seen), 1)
}
