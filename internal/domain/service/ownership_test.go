package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.True(t, IsOwner(owner, owner))
	assert.False(t, IsOwner(owner, other))
	assert.False(t, IsOwner(other, owner))

	// The zero UUID is only an owner of itself.
	assert.True(t, IsOwner(uuid.Nil, uuid.Nil))
	assert.False(t, IsOwner(owner, uuid.Nil))
}
