package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := apperr.InvalidSelectionf("card level %d is out of range", 12).
		WithMeta("card_level", 12)

	wrapped := apperr.Wrap(base, "failed to price selection")
	require.NotNil(t, wrapped)

	assert.Equal(t, apperr.CodeInvalidSelection, wrapped.Code)
	assert.True(t, apperr.IsInvalidSelection(wrapped))
	assert.Equal(t, 12, wrapped.Meta["card_level"])
	assert.Equal(t, "failed to price selection: card level 12 is out of range", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestWrap_ForeignError(t *testing.T) {
	wrapped := apperr.Wrap(stderrors.New("connection refused"), "failed to load selection")

	assert.Equal(t, apperr.CodeUnknown, wrapped.Code)
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
	assert.Nil(t, apperr.GetMeta(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "ignored"))
	assert.Nil(t, apperr.Wrapf(nil, "ignored %d", 1))
	assert.Nil(t, apperr.WrapWithCode(nil, apperr.CodeInternal, "ignored"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := apperr.WrapWithCode(stderrors.New("dial tcp"), apperr.CodeUnavailable, "redis unavailable")

	assert.True(t, apperr.Is(wrapped, apperr.CodeUnavailable))
	assert.False(t, apperr.IsNotFound(wrapped))
}

func TestWithMeta_CopyOnWrap(t *testing.T) {
	base := apperr.NotFound("selection not found").WithMeta("selection_id", "abc")
	wrapped := apperr.Wrap(base, "lookup failed")

	wrapped.WithMeta("extra", true)

	_, leaked := base.Meta["extra"]
	assert.False(t, leaked)
}
