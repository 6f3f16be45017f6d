package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHomeDir(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHomeDir(""))
	})

	t.Run("no home", func(t *testing.T) {
		assert.Equal(t, "/path", ExpandHomeDir("/path"))
		assert.Equal(t, "~user/path", ExpandHomeDir("~user/path"))
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("HOME", "/home/user")
		assert.Equal(t, "/home/user/.config/blockctl/config.yaml", ExpandHomeDir("~/.config/blockctl/config.yaml"))
		assert.Equal(t, "/home/user", ExpandHomeDir("~"))
	})
}
