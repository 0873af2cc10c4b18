package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFile_CanRead(t *testing.T) {
	f := &File{UserID: "owner", Collaborators: []string{"c1", "c2"}}

	assert.True(t, f.CanRead("owner"))
	assert.True(t, f.CanRead("c2"))
	assert.False(t, f.CanRead("stranger"))
	assert.False(t, f.CanRead(""))
}
