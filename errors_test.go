package blogsmith_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/blogsmith"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := blogsmith.Errorf(blogsmith.ENOTFOUND, "page %q not found", "test")

	assert.Equal(t, blogsmith.ENOTFOUND, blogsmith.ErrorCode(err))
	assert.Equal(t, "page \"test\" not found", blogsmith.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, blogsmith.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, blogsmith.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scrape: %w", blogsmith.Errorf(blogsmith.ETIMEOUT, "too slow"))

	assert.Equal(t, blogsmith.ETIMEOUT, blogsmith.ErrorCode(err))
	assert.Equal(t, "too slow", blogsmith.ErrorMessage(err))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, blogsmith.EINTERNAL, blogsmith.ErrorCode(err))
	assert.Equal(t, "Internal error.", blogsmith.ErrorMessage(err))
}
