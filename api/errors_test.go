package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Matching(t *testing.T) {
	err := Wrap(ErrCodeResourceExhausted, ErrBufferFull).WithContext("capacity", 4)
	wrapped := fmt.Errorf("enqueue: %w", err)

	assert.ErrorIs(t, wrapped, ErrBufferFull)
	assert.ErrorIs(t, wrapped, ErrResourceExhausted)
	assert.NotErrorIs(t, wrapped, ErrInvalidArgument)
	assert.Equal(t, ErrCodeResourceExhausted, CodeOf(wrapped))
	assert.Equal(t, "ring buffer full (context: map[capacity:4])", err.Error())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeOK, CodeOf(nil))
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, ErrCodeInvalidArgument, CodeOf(NewError(ErrCodeInvalidArgument, "bad")))
	assert.Equal(t, "resource_exhausted", ErrCodeResourceExhausted.String())
	assert.Equal(t, "code(42)", ErrorCode(42).String())
}

func TestStats_Dropped(t *testing.T) {
	assert.Equal(t, uint64(5), Stats{Rejected: 2, Overwritten: 3}.Dropped())
}
