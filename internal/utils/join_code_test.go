package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tsubaki-dev/lesson-points-api/internal/constants"
)

func TestGenerateJoinCode_Format(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 200; i++ {
		code, err := GenerateJoinCode()
		require.NoError(t, err)
		require.Len(t, code, constants.JoinCodeLength)

		for _, ch := range code {
			require.True(t, strings.ContainsRune(JoinCodeAlphabet, ch),
				"code %q contains %q outside the alphabet", code, ch)
		}

		seen[code] = struct{}{}
	}

	// 200 draws from a ~billion-value space should never all collide.
	require.Greater(t, len(seen), 1)
}

func TestJoinCodeAlphabet_ExcludesAmbiguousGlyphs(t *testing.T) {
	for _, ch := range "0O1IL" {
		require.False(t, strings.ContainsRune(JoinCodeAlphabet, ch),
			"alphabet must not contain %q", ch)
	}
}
