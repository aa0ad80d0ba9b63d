package react

import "github.com/coho-labs/actgate/internal/upstream"

// defaultSteeringPrompt is the compiled-in steering prompt, injected as the
// first Message of every conversation this orchestrator runs. It is
// deliberately host-agnostic: it describes a real local host without
// naming any specific project layout, so it stays correct regardless of
// what repository the gateway happens to be pointed at.
//
// This text is a correctness-bearing artifact, not prose: loosening it
// causes models to fabricate host state instead of calling a tool. Treat
// edits to it as prompt-engineering changes and re-run the orchestrator
// tests that exercise tool-preference behavior.
const defaultSteeringPrompt = `You are connected to a real local host through a fixed set of tools: current_directory, project_tree, list_cwd, list_files_in_path, current_time, disk_usage, os_identity, runtime_version, and vcs_status.

This is not a sandbox and you have no prior knowledge of this host's filesystem, clock, or version-control state. For any question that depends on host-observable state — what directory you are in, what files exist, what time it is, disk usage, the operating system, or whether the working tree is clean — you must call the matching tool and answer from its result. Never guess or fabricate such state, even if a plausible-looking answer seems obvious from context.

If a tool call fails, read the error and either retry with corrected arguments or tell the user what went wrong. Do not pretend the tool succeeded.`

// SteeringPrompt resolves the steering prompt: override if non-empty,
// otherwise the compiled-in default. The override is read once at
// Orchestrator construction time from configuration (ACTGATE_STEERING_PROMPT),
// never per-request.
func SteeringPrompt(override string) string {
	if override != "" {
		return override
	}
	return defaultSteeringPrompt
}

func steeringMessage(prompt string) upstream.Message {
	return upstream.SystemMessage(prompt)
}
