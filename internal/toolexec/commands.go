package toolexec

import "github.com/coho-labs/actgate/internal/toolcatalog"

// CommandSpec is the fixed argv run for one niladic tool name. There is no
// shell involved: Argv[0] is looked up on PATH and the rest are passed as
// literal argument strings, never interpolated from model input.
type CommandSpec struct {
	Argv []string
}

// commands is the static whitelist. It is keyed by the same name constants
// toolcatalog advertises to the model, so the two packages cannot drift out
// of sync. list_files_in_path is deliberately absent here: it is the one
// path-parameterized tool and gets its working directory from the Path
// Sanitizer instead of a fixed argv entry.
var commands = map[string]CommandSpec{
	toolcatalog.NameCurrentDirectory: {Argv: []string{"pwd"}},
	toolcatalog.NameProjectTree:      {Argv: []string{"tree", "-L", "3", "-I", ".git|node_modules|vendor|dist|build|target"}},
	toolcatalog.NameListCWD:          {Argv: []string{"ls", "-la"}},
	toolcatalog.NameCurrentTime:      {Argv: []string{"date"}},
	toolcatalog.NameDiskUsage:        {Argv: []string{"df", "-h"}},
	toolcatalog.NameOSIdentity:       {Argv: []string{"uname", "-a"}},
	toolcatalog.NameRuntimeVersion:   {Argv: []string{"go", "version"}},
	toolcatalog.NameVCSStatus:        {Argv: []string{"git", "status", "--short"}},
}

// listArgv is the fixed directory-listing command run for the one
// path-parameterized tool, with the working directory supplied separately
// by the caller after Path Sanitizer resolution.
var listArgv = []string{"ls", "-la"}
