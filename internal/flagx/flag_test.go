package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{name: "separate value", args: []string{"-b", "memory", "-x", "1"}, allowed: []string{"-b"}, expected: []string{"-b", "memory"}},
		{name: "equals form", args: []string{"--b=memory", "-x=1"}, allowed: []string{"--b"}, expected: []string{"--b=memory"}},
		{name: "flag followed by flag", args: []string{"-b", "-d", "dir"}, allowed: []string{"-b", "-d"}, expected: []string{"-b", "-d", "dir"}},
		{name: "nothing allowed", args: []string{"-b", "memory"}, allowed: []string{}, expected: []string{}},
		{name: "empty args", args: []string{}, allowed: []string{"-b"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "conf.json"}
		assert.Equal(t, "conf.json", JsonConfigFlags())
	})

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "c.json"}
		assert.Equal(t, "c.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"testbin", "-b", "memory"}
		assert.Equal(t, "", JsonConfigFlags())
	})
}
