// Package toolexec runs the mapped command for a tool call under a
// wall-clock timeout and output cap, and never lets a failure escape as a
// Go error across its public boundary — every failure becomes a string
// beginning with "Error:" that is fed back to the model as a tool message.
package toolexec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/coho-labs/actgate/internal/audit"
	"github.com/coho-labs/actgate/internal/pathguard"
	"github.com/coho-labs/actgate/internal/toolcatalog"
)

// Executor dispatches tool calls to the static whitelist, confines the one
// path-parameterized tool through pathguard, and records one audit.Entry
// per call.
type Executor struct {
	cwd   string
	audit audit.Store
}

// New builds an Executor rooted at cwd (normally the process working
// directory) that records every execution to store.
func New(cwd string, store audit.Store) *Executor {
	if store == nil {
		store = audit.NoopStore{}
	}
	return &Executor{cwd: cwd, audit: store}
}

// Execute runs the tool named name with args and returns its result as a
// string suitable for a tool message: either captured output or an
// "Error:"-prefixed failure description. It never returns a Go error.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) string {
	start := time.Now()

	result, execErr := e.dispatch(ctx, name, args)

	entry := audit.Entry{
		ID:         uuid.NewString(),
		ToolName:   name,
		Args:       encodeArgs(args),
		DurationMS: time.Since(start).Milliseconds(),
		Succeeded:  execErr == nil,
		CreatedAt:  start,
	}
	if execErr != nil {
		entry.ErrorText = execErr.Error()
	}
	// The audit write uses its own context, not ctx: an inbound-client
	// disconnect should not also discard the record of what already ran.
	_ = e.audit.Record(context.Background(), entry)

	if execErr != nil {
		return "Error: " + execErr.Error()
	}
	return result
}

func (e *Executor) dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	if name == toolcatalog.NameListFilesInPath {
		return e.runPathParameterized(ctx, args)
	}

	spec, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w: tool %q not found in whitelist", ErrToolUnknown, name)
	}
	return e.run(ctx, spec.Argv, e.cwd)
}

func (e *Executor) runPathParameterized(ctx context.Context, args map[string]any) (string, error) {
	path, _ := args["path"].(string)
	if path == "" {
		path = "."
	}

	resolved, err := pathguard.Sanitize(e.cwd, path)
	if err != nil {
		return "", err
	}

	out, err := e.run(ctx, listArgv, resolved)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "(empty directory)", nil
	}
	return out, nil
}

// run spawns argv[0] with the remaining elements as literal arguments,
// working directory dir, under the timeout cap, and enforces the output
// cap on each of the stdout and stderr captures. The cap is enforced as the
// process runs, not after it exits, so a command that never stops writing
// is killed rather than buffered indefinitely.
func (e *Executor) run(ctx context.Context, argv []string, dir string) (string, error) {
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, argv[0], argv[1:]...)
	cmd.Dir = dir

	overflowed := false
	stdout := &capWriter{limit: outputCap, onOverflow: func() { overflowed = true; cancel() }}
	stderr := &capWriter{limit: outputCap, onOverflow: func() { overflowed = true; cancel() }}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()

	if overflowed {
		return "", fmt.Errorf("%w: output exceeded %s cap", ErrOutputOverflow, humanize.IBytes(outputCap))
	}

	if execCtx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%w: %s exceeded %s", ErrToolTimeout, argv[0], timeout)
	}

	if runErr != nil {
		if stdout.buf.Len() == 0 && stderr.buf.Len() == 0 {
			return "", fmt.Errorf("%w: %s: %v", ErrToolRuntime, argv[0], runErr)
		}
		// Nonzero exit with output: the model gets the output, matching
		// the "command succeeded with stderr" ambiguity this boundary is
		// required to flatten.
	}

	if stdout.buf.Len() > 0 {
		return stdout.buf.String(), nil
	}
	return stderr.buf.String(), nil
}

// capWriter accumulates writes up to limit bytes and then calls
// onOverflow exactly once, discarding everything written after the cap.
type capWriter struct {
	buf        bytes.Buffer
	limit      int
	written    bool
	onOverflow func()
}

func (w *capWriter) Write(p []byte) (int, error) {
	if w.written || w.buf.Len()+len(p) > w.limit {
		if !w.written {
			w.written = true
			w.onOverflow()
		}
		return len(p), nil
	}
	return w.buf.Write(p)
}

func encodeArgs(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
