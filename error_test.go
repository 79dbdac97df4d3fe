package mcpfinder_test

import (
	"errors"
	"testing"

	"github.com/lksrz/mcpfinder"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mcpfinder.Errorf(mcpfinder.ENOTFOUND, "entry %q not found", "test")

	assert.Equal(t, mcpfinder.ENOTFOUND, mcpfinder.ErrorCode(err))
	assert.Equal(t, "entry \"test\" not found", mcpfinder.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mcpfinder.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mcpfinder.EINTERNAL, mcpfinder.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mcpfinder.ErrorMessage(nil))
}
