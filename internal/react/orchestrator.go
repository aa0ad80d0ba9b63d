// Package react implements the bounded ReACT tool-calling loop: buffered
// upstream calls interleaved with local tool execution, terminating either
// because the model stops requesting tools or because the iteration cap is
// reached.
package react

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coho-labs/actgate/internal/upstream"
)

// maxIterations bounds the number of buffered, tool-advertising upstream
// calls a single run may make. Fixed at compile time: spec.md's source
// material showed two competing values (3 and 10); this implementation
// adopts 10.
const maxIterations = 10

// ToolRunner executes one tool call and returns its result (or an
// "Error:"-prefixed failure string) as fed back to the model. It never
// returns a Go error — toolexec.Executor satisfies this directly.
type ToolRunner interface {
	Execute(ctx context.Context, name string, args map[string]any) string
}

// ToolAdvertiser supplies the fixed tool catalog advertised on every
// tool-discovery call. toolcatalog.Catalog satisfies this directly.
type ToolAdvertiser interface {
	ListToolDefs() []upstream.ToolDef
}

// Request is the orchestrator's input: the client's decoded chat-completions
// body.
type Request struct {
	Model       string
	Messages    []upstream.Message
	Temperature *float64
	Stream      bool
}

// Termination records why a run ended, for tests and logging; it does not
// change the client-visible shape of the result.
type Termination int

const (
	TerminationModelDecided Termination = iota
	TerminationForced
)

// Result is the orchestrator's output. Exactly one of Stream or RawJSON is
// set, matching the client's stream preference.
type Result struct {
	// Stream is the live upstream response for the final, tools-free
	// streaming call. The caller owns Stream.Body and must close it.
	Stream *http.Response

	// RawJSON is the raw bytes of the final buffered upstream turn, to be
	// augmented with the trace and returned verbatim otherwise.
	RawJSON []byte

	// Trace is the full conversation, excluding the injected steering
	// message, for the Response Adapter to attach as __react_messages.
	Trace []upstream.Message

	Termination Termination
}

// Orchestrator runs the ReACT loop over an upstream.Client and a
// ToolRunner/ToolAdvertiser pair.
type Orchestrator struct {
	upstream       upstream.Client
	tools          ToolRunner
	catalog        ToolAdvertiser
	steeringPrompt string
}

// New builds an Orchestrator. steeringPrompt should already be resolved
// (see SteeringPrompt) — the orchestrator does not re-read configuration.
func New(client upstream.Client, catalog ToolAdvertiser, tools ToolRunner, steeringPrompt string) *Orchestrator {
	return &Orchestrator{
		upstream:       client,
		tools:          tools,
		catalog:        catalog,
		steeringPrompt: steeringPrompt,
	}
}

// Run executes the bounded tool-calling loop for req and returns a Result
// shaped by req.Stream and by how the loop terminated. The only error
// returned is a failure the client must see: a non-2xx upstream response
// (*upstream.Error) or a transport-level failure calling upstream.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	conversation := make([]upstream.Message, 0, len(req.Messages)+1)
	conversation = append(conversation, steeringMessage(o.steeringPrompt))
	conversation = append(conversation, req.Messages...)

	toolDefs := o.catalog.ListToolDefs()

	var lastRaw []byte
	termination := TerminationForced

	for i := 0; i < maxIterations; i++ {
		raw, resp, err := o.upstream.Call(ctx, upstream.Request{
			Model:       req.Model,
			Messages:    conversation,
			Tools:       toolDefs,
			Stream:      false,
			Temperature: req.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("upstream call (iteration %d): %w", i+1, err)
		}
		lastRaw = raw

		conversation = append(conversation, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			termination = TerminationModelDecided
			return o.finalize(ctx, req, conversation, lastRaw, termination)
		}

		for _, tc := range resp.Message.ToolCalls {
			result := o.tools.Execute(ctx, tc.Name, tc.Args)
			conversation = append(conversation, upstream.ToolResultMessage(tc.ID, result))
		}
	}

	return o.finalize(ctx, req, conversation, lastRaw, termination)
}

// finalize issues whatever additional upstream call is needed (or none) to
// produce the response shape the client's stream preference requires.
func (o *Orchestrator) finalize(ctx context.Context, req Request, conversation []upstream.Message, lastRaw []byte, term Termination) (*Result, error) {
	if req.Stream {
		httpResp, err := o.upstream.Stream(ctx, upstream.Request{
			Model:       req.Model,
			Messages:    conversation,
			Tools:       nil,
			Stream:      true,
			Temperature: req.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("upstream stream call: %w", err)
		}
		return &Result{Stream: httpResp, Termination: term}, nil
	}

	if term == TerminationModelDecided {
		return &Result{RawJSON: lastRaw, Trace: conversation[1:], Termination: term}, nil
	}

	// Forced finish: the model was still requesting tools when the cap
	// was hit. Elicit a plain-text answer with no tools advertised.
	raw, resp, err := o.upstream.Call(ctx, upstream.Request{
		Model:       req.Model,
		Messages:    conversation,
		Tools:       nil,
		Stream:      false,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("upstream forced-finish call: %w", err)
	}
	conversation = append(conversation, resp.Message)
	return &Result{RawJSON: raw, Trace: conversation[1:], Termination: term}, nil
}
