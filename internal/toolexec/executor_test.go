package toolexec

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/coho-labs/actgate/internal/audit"
	"github.com/coho-labs/actgate/internal/toolcatalog"
)

type recordingStore struct {
	entries []audit.Entry
}

func (r *recordingStore) Record(_ context.Context, e audit.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *recordingStore) Close() error { return nil }

func TestExecute_UnknownTool(t *testing.T) {
	store := &recordingStore{}
	e := New(t.TempDir(), store)

	got := e.Execute(context.Background(), "delete_everything", nil)

	if !strings.HasPrefix(got, "Error:") {
		t.Fatalf("Execute() = %q, want Error: prefix", got)
	}
	if len(store.entries) != 1 || store.entries[0].Succeeded {
		t.Fatalf("expected one failed audit entry, got %+v", store.entries)
	}
}

func TestExecute_NiladicCommand(t *testing.T) {
	store := &recordingStore{}
	e := New(t.TempDir(), store)

	got := e.Execute(context.Background(), toolcatalog.NameCurrentDirectory, nil)

	if strings.HasPrefix(got, "Error:") {
		t.Fatalf("Execute(current_directory) = %q, want no error", got)
	}
	if len(store.entries) != 1 || !store.entries[0].Succeeded {
		t.Fatalf("expected one successful audit entry, got %+v", store.entries)
	}
}

func TestExecute_PathParameterized_Rejected(t *testing.T) {
	e := New(t.TempDir(), audit.NoopStore{})

	got := e.Execute(context.Background(), toolcatalog.NameListFilesInPath, map[string]any{"path": "../../etc"})

	if !strings.HasPrefix(got, "Error:") {
		t.Fatalf("Execute(list_files_in_path, ../../etc) = %q, want Error: prefix", got)
	}
	if !strings.Contains(got, "traversal") {
		t.Fatalf("Execute(list_files_in_path, ../../etc) = %q, want traversal rejection", got)
	}
}

func TestExecute_PathParameterized_DefaultsToCwd(t *testing.T) {
	e := New(t.TempDir(), audit.NoopStore{})

	got := e.Execute(context.Background(), toolcatalog.NameListFilesInPath, map[string]any{})

	if strings.HasPrefix(got, "Error:") {
		t.Fatalf("Execute(list_files_in_path, {}) = %q, want no error", got)
	}
}

func TestRun_Timeout(t *testing.T) {
	e := New(t.TempDir(), audit.NoopStore{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	start := time.Now()
	_, err := e.run(ctx, []string{"sleep", "30"}, e.cwd)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrToolTimeout) {
		t.Fatalf("run(sleep 30) error = %v, want ErrToolTimeout", err)
	}
	if elapsed >= 15*time.Second {
		t.Fatalf("run(sleep 30) took %s, want it bounded by the internal 10s cap", elapsed)
	}
}

func TestRun_OutputOverflow(t *testing.T) {
	e := New(t.TempDir(), audit.NoopStore{})

	_, err := e.run(context.Background(), []string{"yes"}, e.cwd)

	if !errors.Is(err, ErrToolTimeout) && !errors.Is(err, ErrOutputOverflow) {
		t.Fatalf("run(yes) error = %v, want ErrOutputOverflow (or a timeout racing it)", err)
	}
}

func TestRun_StdoutPrecedesStderr(t *testing.T) {
	e := New(t.TempDir(), audit.NoopStore{})

	out, err := e.run(context.Background(), []string{"sh", "-c", "echo out; echo err 1>&2"}, e.cwd)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.TrimSpace(out) != "out" {
		t.Fatalf("run() = %q, want stdout to take precedence over stderr", out)
	}
}

func TestRun_FallsBackToStderr(t *testing.T) {
	e := New(t.TempDir(), audit.NoopStore{})

	out, err := e.run(context.Background(), []string{"sh", "-c", "echo err 1>&2"}, e.cwd)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.TrimSpace(out) != "err" {
		t.Fatalf("run() = %q, want stderr when stdout is empty", out)
	}
}
