package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentitySet(t *testing.T) {
	set := NewIdentitySet("STMT-B", "STMT-A")
	assert.True(t, set.Has("STMT-A"))
	assert.False(t, set.Has("STMT-C"))

	set.Add("STMT-C")
	assert.True(t, set.Has("STMT-C"))

	assert.Equal(t, []string{"STMT-A", "STMT-B", "STMT-C"}, set.List())
}

func TestIdentitySetCloneIsIndependent(t *testing.T) {
	original := NewIdentitySet("STMT-A")
	clone := original.Clone()
	clone.Add("STMT-B")

	assert.True(t, clone.Has("STMT-B"))
	assert.False(t, original.Has("STMT-B"))
}
