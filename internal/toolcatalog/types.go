// Package toolcatalog is the static, process-wide catalog of tools
// published to the model. Wording here is part of the prompting surface:
// changing a Description changes model behavior, so treat edits to this
// package as prompt-engineering changes, not refactors.
package toolcatalog

import "github.com/coho-labs/actgate/internal/upstream"

// Tool names. These are the only strings the model may put in a ToolCall's
// function.name; internal/toolexec's whitelist is keyed by the same
// constants so the two packages can never drift out of sync.
const (
	NameCurrentDirectory  = "current_directory"
	NameProjectTree       = "project_tree"
	NameListCWD           = "list_cwd"
	NameListFilesInPath   = "list_files_in_path" // the one path-parameterized tool
	NameCurrentTime       = "current_time"
	NameDiskUsage         = "disk_usage"
	NameOSIdentity        = "os_identity"
	NameRuntimeVersion    = "runtime_version"
	NameVCSStatus         = "vcs_status"
)

// ToolDescriptor is published to the model in every upstream call made
// during the tool-discovery phase. It is either niladic (fixed command,
// empty parameters) or the single path-parameterized kind.
type ToolDescriptor struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolDef converts a ToolDescriptor to the wire shape the upstream client
// sends to the model.
func (d ToolDescriptor) ToolDef() upstream.ToolDef {
	return upstream.ToolDef{
		Name:        d.Name,
		Description: d.Description,
		Parameters:  d.Parameters,
	}
}
