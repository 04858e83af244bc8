package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	out    io.Writer
	errOut io.Writer
}

// FormatterFor reads the --json and --quiet flags of cmd
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.out != nil {
		return f.out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.errOut != nil {
		return f.errOut
	}
	return os.Stderr
}

// Printf writes human-readable output; it is silent in JSON and quiet mode
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Fprintf(f.stdout(), format, args...)
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Fprintln(f.stdout(), idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.WriteJSON(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// WriteJSON encodes v as one line of JSON on stdout
func (f *OutputFormatter) WriteJSON(v any) error {
	return json.NewEncoder(f.stdout()).Encode(v)
}

// ID prints id on its own line, for quiet mode
func (f *OutputFormatter) ID(id fmt.Stringer) {
	fmt.Fprintln(f.stdout(), id.String())
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.WriteJSON(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.stderr(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns a *CodeError with the exit code matching its
// class: not found, validation or internal.
func (f *OutputFormatter) Fail(err error) error {
	code, exit := Classify(err)
	f.report(code, err.Error(), "")
	return &CodeError{Code: exit, Err: err}
}

// Usage reports a usage problem and returns a *CodeError with ExitUsage
func (f *OutputFormatter) Usage(code, message, suggestion string) error {
	f.report(code, message, suggestion)
	return &CodeError{Code: ExitUsage, Err: fmt.Errorf("%s", message)}
}

func (f *OutputFormatter) report(code, message, suggestion string) {
	if fmtErr := f.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "failed to format error message: %v\n", fmtErr)
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	fmt.Fprintf(f.stdout(), "%+v\n", data)
	return nil
}

// EncodeJSON writes v to w as one line of JSON
func EncodeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
