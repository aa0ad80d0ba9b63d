package toolexec

import (
	"errors"
	"time"
)

// Resource caps. Compile-time constants per the configuration design: the
// only externally tunable knobs are upstream connectivity, the model
// allowlist, the listen port and the steering prompt, not these.
const (
	timeout   = 10 * time.Second
	outputCap = 1 << 20 // 1 MiB
)

// Sentinel errors. Every one of these is absorbed by Execute and turned
// into an "Error:"-prefixed string before it reaches the model; they exist
// so tests and the audit hook can classify a failure without parsing that
// string.
var (
	ErrToolUnknown    = errors.New("tool not found in whitelist")
	ErrToolTimeout    = errors.New("tool execution timed out")
	ErrOutputOverflow = errors.New("tool output exceeded cap")
	ErrToolRuntime    = errors.New("tool execution failed")
)
