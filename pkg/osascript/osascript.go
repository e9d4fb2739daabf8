// Package osascript runs JavaScript for Automation snippets through the
// macOS osascript interpreter.
//
// A snippet is wrapped in a function with a $params variable bound to the
// JSON encoding of the caller's parameters. The function's return value is
// passed through JSON.stringify and decoded from the interpreter's stdout,
// so scripts exchange only JSON-representable values with the caller.
package osascript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

const defaultBin = "/usr/bin/osascript"

// Error reports a failed osascript invocation. Stderr carries the
// interpreter's diagnostics, which include the application's error message
// when a call is rejected.
type Error struct {
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return fmt.Sprintf("osascript: %v: %s", e.Err, s)
	}
	return fmt.Sprintf("osascript: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Runner executes scripts through an osascript binary.
type Runner struct {
	// Bin is the interpreter path, /usr/bin/osascript when empty.
	Bin string
}

// NewRunner returns a Runner using the system interpreter.
func NewRunner() *Runner {
	return &Runner{Bin: defaultBin}
}

// wrap builds the executable script around the caller's snippet. The
// trailing expression is the script result osascript prints to stdout.
func wrap(src string, params []byte) string {
	return fmt.Sprintf(`var $params = %s;
var $result = (function() {
%s
})();
JSON.stringify($result === undefined ? null : $result);`, params, src)
}

// Execute runs src with $params bound to the JSON encoding of params and
// decodes the script's return value into out. A script returning undefined
// or null leaves out untouched, so pointer targets report absence as nil.
func (r *Runner) Execute(ctx context.Context, src string, params, out interface{}) error {
	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode script params: %w", err)
	}

	bin := r.Bin
	if bin == "" {
		bin = defaultBin
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-l", "JavaScript", "-e", wrap(src, payload))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &Error{Stderr: stderr.String(), Err: err}
	}

	result := strings.TrimSpace(stdout.String())
	if result == "" || result == "null" {
		return nil
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(result), out); err != nil {
		return &Error{Err: fmt.Errorf("decode script result: %w", err)}
	}
	return nil
}
