package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("CENTRADIAL_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"absolute unchanged", "/tmp/centradial.db", "/tmp/centradial.db"},
		{"tilde prefix", "~/state/app.db", filepath.Join(home, "state/app.db")},
		{"bare tilde", "~", home},
		{"env var", "$CENTRADIAL_TEST_DIR/app.db", "/var/data/app.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}
