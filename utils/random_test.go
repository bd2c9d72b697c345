package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(12)
	require.NoError(t, err)
	assert.Len(t, s, 12)

	// Karıştırılabilir karakterler (0/O/1/I) alfabede yoktur.
	assert.NotContains(t, s, "0")
	assert.NotContains(t, s, "O")
	assert.NotContains(t, s, "1")
	assert.NotContains(t, s, "I")

	other, err := GenerateSecureRandomString(12)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestGenerateCardUID(t *testing.T) {
	uid, err := GenerateCardUID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uid, "QK-"))
	assert.Len(t, uid, 11)
}
