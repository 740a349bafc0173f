package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/gridnav/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a hint for known error codes and returns err unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	var gridErr *errors.GridError
	stderrors.As(err, &gridErr)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "Configuration not found: %v\n", err)
		fmt.Fprintln(h.Out, "Pass --config or create gridnav.yml in this directory.")

	case errors.ErrCodeConfigValidation, errors.ErrCodeConfigInvalid:
		fmt.Fprintf(h.Out, "Invalid configuration: %v\n", err)
		fmt.Fprintln(h.Out, "Run 'gridnav schema' to see the accepted keys.")

	case errors.ErrCodeItemsNotFound:
		fmt.Fprintf(h.Out, "Item source '%v' not found\n", gridErr.Details["path"])

	case errors.ErrCodeUnsupportedFormat:
		fmt.Fprintf(h.Out, "Cannot read '%v' files; use .json, .jsonl, .yaml, .yml or .toml\n", gridErr.Details["extension"])

	case errors.ErrCodeNotATerminal:
		fmt.Fprintln(h.Out, "The interactive grid needs a terminal. Use 'gridnav layout' for plain output.")

	default:
		fmt.Fprintf(h.Out, "Error: %v\n", err)
	}

	if h.Verbose && gridErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", gridErr.ToJSON())
	}
	return err
}
