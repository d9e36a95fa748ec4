package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	occupied := State("position already occupied")
	wrapped := fmt.Errorf("wire vertex 3: %w", occupied)

	assert.ErrorIs(t, wrapped, ErrState)
	assert.ErrorIs(t, wrapped, occupied)
	assert.NotErrorIs(t, wrapped, ErrArgument)
	assert.NotErrorIs(t, wrapped, State("position already occupied"))

	k, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindState, k)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "not enough ore", Insufficient("not enough ore").Error())
	assert.Equal(t, "argument error", ErrArgument.Error())
	assert.Equal(t, "unknown", Kind(99).String())
}
