package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunUnknownProfile(t *testing.T) {
	args := os.Args
	defer func() { os.Args = args }()

	os.Args = []string{"alignvec", "-profile", "heap"}
	assert.Equal(t, 2, run())
}
