package cmd

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"project", "column", "board", "serve", "watch", "doctor", "view", "use", "setup"} {
		assert.Contains(t, names, want)
	}
}

func TestNewRootCmd_UnknownFlagIsUsageError(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"project", "list", "--bogus"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	require.Error(t, err)
	assert.True(t, isUsageError(err), "got %v", err)
}

func TestIsUsageError(t *testing.T) {
	tests := []struct {
		err  string
		want bool
	}{
		{`unknown command "frobnicate" for "kanban"`, true},
		{`required flag(s) "title" not set`, true},
		{"accepts 1 arg(s), received 0", true},
		{"requires at least 1 arg(s), only received 0", true},
		{"flag needs an argument: --title", true},
		{"database is locked", false},
	}

	for _, tt := range tests {
		t.Run(tt.err, func(t *testing.T) {
			assert.Equal(t, tt.want, isUsageError(errors.New(tt.err)))
		})
	}
}
