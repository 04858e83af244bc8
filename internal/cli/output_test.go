package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/services"
	"github.com/thenoetrevino/kanban/internal/types"
)

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, out: &out, errOut: &errOut}, &out, &errOut
}

type withID struct{ ID string }

func (w withID) GetID() string { return w.ID }

func TestOutputFormatter_Success(t *testing.T) {
	t.Run("json wraps data", func(t *testing.T) {
		f, out, _ := newFormatter(true, false)
		require.NoError(t, f.Success(map[string]any{"title": "Todo"}))

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, true, got["success"])
		assert.Equal(t, "Todo", got["data"].(map[string]any)["title"])
	})

	t.Run("quiet prints the id", func(t *testing.T) {
		f, out, _ := newFormatter(false, true)
		require.NoError(t, f.Success(withID{ID: "abc"}))
		assert.Equal(t, "abc\n", out.String())
	})

	t.Run("human falls back to %+v", func(t *testing.T) {
		f, out, _ := newFormatter(false, false)
		require.NoError(t, f.Success(struct{ N int }{3}))
		assert.Equal(t, "{N:3}\n", out.String())
	})
}

func TestOutputFormatter_Printf_SilentInMachineModes(t *testing.T) {
	for _, mode := range []struct{ json, quiet bool }{{true, false}, {false, true}} {
		f, out, _ := newFormatter(mode.json, mode.quiet)
		f.Printf("hello %s\n", "world")
		assert.Empty(t, out.String())
	}

	f, out, _ := newFormatter(false, false)
	f.Printf("hello %s\n", "world")
	assert.Equal(t, "hello world\n", out.String())
}

func TestOutputFormatter_ErrorWithSuggestion(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		f, out, errOut := newFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "gone", "look elsewhere"))

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, false, got["success"])
		e := got["error"].(map[string]any)
		assert.Equal(t, "NOT_FOUND", e["code"])
		assert.Equal(t, "look elsewhere", e["suggestion"])
		assert.Empty(t, errOut.String())
	})

	t.Run("human goes to stderr", func(t *testing.T) {
		f, out, errOut := newFormatter(false, false)
		require.NoError(t, f.Error("INTERNAL_ERROR", "boom"))
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "Error: boom")
		assert.NotContains(t, errOut.String(), "Suggestion")
	})
}

func TestOutputFormatter_Fail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"not found", &database.NotFoundError{Entity: "board", ID: "x", Err: database.ErrNotFound}, "NOT_FOUND", ExitNotFound},
		{"invalid", services.Invalid("title cannot be empty"), "VALIDATION_ERROR", ExitValidation},
		{"other", errors.New("disk full"), "INTERNAL_ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(true, false)
			err := f.Fail(fmt.Errorf("wrapped: %w", tt.err))

			assert.Equal(t, tt.wantExit, ExitCode(err))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, out.String(), tt.wantCode)
		})
	}
}

func TestOutputFormatter_IDParsing(t *testing.T) {
	f, _, errOut := newFormatter(false, false)

	id := types.NewBoardID()
	got, err := f.BoardID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = f.ColumnID("not-a-uuid")
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, errOut.String(), "kanban column list")
}

func TestResolveProjectID_FallsBackToEnv(t *testing.T) {
	id := types.NewProjectID()
	t.Setenv(ProjectEnv, id.String())

	f, _, _ := newFormatter(false, false)
	got, err := f.ResolveProjectID("")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	t.Setenv(ProjectEnv, "")
	_, err = f.ResolveProjectID("")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitDataErr, ExitCode(fmt.Errorf("ctx: %w", &CodeError{Code: ExitDataErr})))
	assert.Equal(t, "exit status 4", (&CodeError{Code: ExitDataErr}).Error())

	f, _, _ := newFormatter(false, true)
	err := f.Usage("BAD_FLAG", "bad flag", "")
	var codeErr *CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, ExitUsage, codeErr.Code)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 board", Plural(1, "board"))
	assert.Equal(t, "0 boards", Plural(0, "board"))
	assert.Equal(t, "3 columns", Plural(3, "column"))
}
