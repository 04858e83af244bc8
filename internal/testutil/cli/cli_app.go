package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/app"
	kanbancli "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/config"
)

// CaptureOutputFunc captures stdout during function execution
func CaptureOutputFunc(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// ExecuteCLICommand executes a CLI command against testApp.
// The app and a default config rooted in a temp dir travel in the context,
// so commands never touch the user's real database or config.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin, for confirmation prompts
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := kanbancli.WithApp(context.Background(), testApp)
	ctx = kanbancli.WithConfig(ctx, config.Default(t.TempDir()))

	SetupCobraCommand(cmd, args)
	cmd.SetIn(strings.NewReader(input))

	var executeErr error
	output := CaptureOutputFunc(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
