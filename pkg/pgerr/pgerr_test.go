package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: ExclusionViolation})

	assert.Equal(t, ExclusionViolation, Code(wrapped))
	assert.Equal(t, "", Code(errors.New("plain")))
	assert.Equal(t, "", Code(nil))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(&pq.Error{Code: ExclusionViolation}))
	assert.True(t, IsConflict(&pq.Error{Code: SerializationFailure}))
	assert.False(t, IsConflict(&pq.Error{Code: UniqueViolation}))
	assert.True(t, Is(&pq.Error{Code: UniqueViolation}, UniqueViolation))
}
