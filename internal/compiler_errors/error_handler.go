package compiler_errors

import (
	"fmt"
	"io"
	"os"
)

type CompilerError interface {
	GetMessage() string
}

// ErrorHandler collects diagnostics produced while processing a source
// buffer. The lexer itself never aborts on malformed input, so callers
// collect per-lexeme errors here and decide afterwards whether to render
// them (Report) or treat the build as failed (FailNow).
type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Report()
	FailNow()
}

type compilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &compilerErrorHandler{
		writer: outputWriter,
	}
}

func (eh *compilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *compilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// Report renders every collected error to the handler's writer without
// terminating the process.
func (eh *compilerErrorHandler) Report() {
	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", err.GetMessage())
	}
}

// FailNow renders all collected errors and exits with a non-zero status.
func (eh *compilerErrorHandler) FailNow() {
	fmt.Fprintln(eh.writer, "Build failed with errors:")
	eh.Report()
	os.Exit(1)
}
