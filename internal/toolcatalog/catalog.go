package toolcatalog

import "github.com/coho-labs/actgate/internal/upstream"

// descriptors is the fixed, compile-time catalog. Order is the order
// advertised to the model on every upstream call made during the
// tool-discovery phase; it is never pruned or reordered based on what the
// model has already used.
var descriptors = []ToolDescriptor{
	{
		Name:        NameCurrentDirectory,
		Description: "Return the gateway process's current working directory. Use this before reasoning about any relative path.",
		Parameters:  niladicSchema,
	},
	{
		Name:        NameProjectTree,
		Description: "Return a depth-limited tree view of the project rooted at the current working directory, excluding common build-artifact directories (.git, node_modules, vendor, dist, build, target). Use this to orient yourself before looking at individual files.",
		Parameters:  niladicSchema,
	},
	{
		Name:        NameListCWD,
		Description: "List the contents of the gateway process's current working directory.",
		Parameters:  niladicSchema,
	},
	{
		Name:        NameListFilesInPath,
		Description: "List the contents of a directory given as a path relative to the current working directory. Defaults to the current directory if no path is given. The path must stay inside the current working directory — it cannot escape it or reach system directories.",
		Parameters:  pathSchema,
	},
	{
		Name:        NameCurrentTime,
		Description: "Return the current wall-clock time on the host. Always call this instead of guessing the date or time.",
		Parameters:  niladicSchema,
	},
	{
		Name:        NameDiskUsage,
		Description: "Return disk usage for the host's filesystems.",
		Parameters:  niladicSchema,
	},
	{
		Name:        NameOSIdentity,
		Description: "Return the host operating system and kernel identity.",
		Parameters:  niladicSchema,
	},
	{
		Name:        NameRuntimeVersion,
		Description: "Return the version of the Go runtime installed on the host.",
		Parameters:  niladicSchema,
	},
	{
		Name:        NameVCSStatus,
		Description: "Return a short-format version-control status for the current working directory (changed/untracked files). Use this instead of assuming the repository is clean.",
		Parameters:  niladicSchema,
	},
}

// Catalog is the read-only, process-wide tool catalog.
type Catalog struct {
	byName map[string]ToolDescriptor
}

// New builds the catalog from the fixed descriptor table. The universe of
// tools is fixed at compile time — there is no Register call, because the
// whole point of this design is that the model can never introduce a tool
// that wasn't in the binary at build time.
func New() *Catalog {
	byName := make(map[string]ToolDescriptor, len(descriptors))
	for _, d := range descriptors {
		byName[d.Name] = d
	}
	return &Catalog{byName: byName}
}

// ListDescriptors returns the full ordered catalog, as sent to the model
// in every upstream call made during the tool-discovery phase.
func (c *Catalog) ListDescriptors() []ToolDescriptor {
	out := make([]ToolDescriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// ListToolDefs is ListDescriptors converted to the upstream wire shape —
// what the orchestrator actually attaches to a Request.
func (c *Catalog) ListToolDefs() []upstream.ToolDef {
	out := make([]upstream.ToolDef, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d.ToolDef())
	}
	return out
}

// IsKnown reports whether name corresponds to an executable tool.
func (c *Catalog) IsKnown(name string) bool {
	_, ok := c.byName[name]
	return ok
}
