// Package pathguard confines a caller-supplied relative path to the
// gateway process's working directory.
package pathguard

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathRejected is the sentinel wrapped by every rejection. Callers use
// errors.Is(err, ErrPathRejected) to recognize the kind without caring
// about the specific reason.
var ErrPathRejected = errors.New("path rejected")

// sensitivePrefixes are absolute-path prefixes that are rejected outright
// even before traversal resolution, as a cheap human-readable guard in
// front of the authoritative confinement check in Sanitize.
var sensitivePrefixes = []string{
	"/etc", "/root", "/var", "/usr", "/bin", "/sbin", "/sys", "/proc",
}

// Sanitize validates input against the confinement policy and resolves it
// to an absolute path rooted at root (normally the process working
// directory). The policy, applied in order:
//
//  1. Trim surrounding whitespace.
//  2. Reject ".." anywhere in the string.
//  3. Reject any of the fixed sensitive absolute prefixes.
//  4. Resolve against root to an absolute, normalized path.
//  5. Reject if the resolved path does not have root as a prefix.
//
// Step 5 is the authoritative confinement check and is enforced
// unconditionally, even though steps 2 and 3 already reject the common
// cases — it is what actually prevents escape if a future change loosens
// the earlier layers.
func Sanitize(root, input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	if strings.Contains(trimmed, "..") {
		return "", fmt.Errorf("%w: path traversal not allowed (contains '..')", ErrPathRejected)
	}

	for _, prefix := range sensitivePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return "", fmt.Errorf("%w: access to %q is restricted", ErrPathRejected, prefix)
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: resolving root: %v", ErrPathRejected, err)
	}

	resolved := filepath.Clean(filepath.Join(absRoot, trimmed))

	if resolved != absRoot && !strings.HasPrefix(resolved, absRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: resolved path escapes the working directory", ErrPathRejected)
	}

	return resolved, nil
}
