package invite

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode_LengthAndAlphabet(t *testing.T) {
	for _, length := range []int{4, 6, 8, 12} {
		code, err := GenerateCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected character %q in code %q", r, code)
		}
	}
}

func TestGenerateCode_RejectsNonPositiveLength(t *testing.T) {
	_, err := GenerateCode(0)
	assert.Error(t, err)
	_, err = GenerateCode(-3)
	assert.Error(t, err)
}

func TestGenerateUniqueCode_ReturnsFirstFreeCode(t *testing.T) {
	calls := 0
	code, err := GenerateUniqueCode(6, 5, func(string) (bool, error) {
		calls++
		return calls < 3, nil // first two codes are taken
	})
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, 3, calls)
}

func TestGenerateUniqueCode_FailsAfterAttemptBudget(t *testing.T) {
	calls := 0
	_, err := GenerateUniqueCode(6, 4, func(string) (bool, error) {
		calls++
		return true, nil // everything is taken
	})
	require.Error(t, err)
	assert.Equal(t, 4, calls)
	assert.Contains(t, err.Error(), "4 attempts")
}

func TestGenerateUniqueCode_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("store unavailable")
	_, err := GenerateUniqueCode(6, 5, func(string) (bool, error) {
		return false, storeErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
