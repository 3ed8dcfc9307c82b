package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestCreateCatalog(t *testing.T) {
	catalog := CreateCatalog()

	ins, ok := catalog.Instruction("JUN")
	assert.True(t, ok)
	assert.Equal(t, 2, ins.Size)
}
