package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	// The legacy files mixed all of these spellings for the same person
	assert.Equal(t, "alice", NormalizeHandle("@alice"))
	assert.Equal(t, "alice", NormalizeHandle("Alice"))
	assert.Equal(t, "alice", NormalizeHandle("  @Alice  "))
	assert.Equal(t, "alice", NormalizeHandle("alice"))
	assert.Equal(t, "", NormalizeHandle("   "))
	assert.Equal(t, "", NormalizeHandle("@"))
}

func TestDisplayHandle(t *testing.T) {
	assert.Equal(t, "@alice", DisplayHandle("alice"))
	assert.Equal(t, "", DisplayHandle(""))
}
