package utils

import (
	"regexp"
	"registration-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomHex(t *testing.T) {
	token, err := GenerateRandomHex(constvars.RegistrationTokenByteLength)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(constvars.RegexRegistrationToken), token)

	other, err := GenerateRandomHex(constvars.RegistrationTokenByteLength)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestGenerateRandomString(t *testing.T) {
	code, err := GenerateRandomString(constvars.VerificationCodeAlphabet, 8)
	require.NoError(t, err)

	assert.Len(t, code, 8)
	for _, char := range code {
		assert.True(t, strings.ContainsRune(constvars.VerificationCodeAlphabet, char), "unexpected character %q", char)
	}
}

func TestGenerateRequestID(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateRequestID(), constvars.REQUEST_ID_PREFIX))
}
