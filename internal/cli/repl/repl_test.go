package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/yndnr/minidb-go/internal/cli/output"
	"github.com/yndnr/minidb-go/internal/core/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memStore is an in-memory Store that can be told to fail inserts.
type memStore struct {
	data    map[string][]domain.Record
	failErr error
	selects int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]domain.Record)}
}

func (s *memStore) Insert(collection string, rec domain.Record) (domain.Record, error) {
	if s.failErr != nil {
		return rec, domain.ErrCommitFailed.WithDetailsf("insert into %q", collection).Wrap(s.failErr)
	}
	s.data[collection] = append(s.data[collection], rec)
	return rec, nil
}

func (s *memStore) SelectAll(collection string) []domain.Record {
	s.selects++
	return domain.CloneRecords(s.data[collection])
}

func runREPL(t *testing.T, store Store, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	opts = append([]Option{WithInput(strings.NewReader(input)), WithOutput(&out)}, opts...)
	if err := New(store, opts...).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestREPL_UsersScenario(t *testing.T) {
	store := newMemStore()
	out := runREPL(t, store,
		"insert users name=John age=25\n"+
			"insert users name=Jane age=30\n"+
			"select users\n"+
			"select orders\n"+
			"exit\n",
		WithFormatter(&output.ListFormatter{}))

	want := []domain.Record{
		domain.RecordOf("name", "John", "age", "25"),
		domain.RecordOf("name", "Jane", "age", "30"),
	}
	if diff := cmp.Diff(want, store.data["users"]); diff != "" {
		t.Errorf("stored users (-want +got):\n%s", diff)
	}

	for _, s := range []string{
		"Welcome to MiniDB",
		Prompt,
		"Record inserted into 'users'.",
		"Records in 'users' (2 total):",
		"1. {name: John, age: 25}",
		"2. {name: Jane, age: 30}",
		"No records found in 'orders'.",
		"Goodbye! Your data has been saved.",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestREPL_ExitStopsReading(t *testing.T) {
	store := newMemStore()
	runREPL(t, store, "exit\ninsert users name=John\n")

	if len(store.data) != 0 {
		t.Errorf("command after exit ran: %v", store.data)
	}
}

func TestREPL_EOF(t *testing.T) {
	out := runREPL(t, newMemStore(), "insert users name=John")
	if !strings.Contains(out, "Record inserted") {
		t.Errorf("last line without newline not executed:\n%s", out)
	}
	if !strings.HasSuffix(out, "Goodbye! Your data has been saved.\n\n") {
		t.Errorf("missing goodbye on EOF:\n%s", out)
	}
}

func TestREPL_ParseErrorsContinue(t *testing.T) {
	store := newMemStore()
	out := runREPL(t, store,
		"insert users name=John age\n"+
			"selct users\n"+
			"select\n"+
			"insert users name=Ann\n"+
			"exit\n")

	for _, s := range []string{
		"Error: invalid format: 'age', expected key=value",
		"Usage: insert <collection>",
		"Error: unknown command: 'selct'",
		"Did you mean: select?",
		"Error: select requires a collection name",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	if diff := cmp.Diff([]domain.Record{domain.RecordOf("name", "Ann")}, store.data["users"]); diff != "" {
		t.Errorf("stored users (-want +got):\n%s", diff)
	}
}

func TestREPL_CommitFailureContinues(t *testing.T) {
	store := newMemStore()
	store.failErr = errors.New("disk full")

	out := runREPL(t, store, "insert users name=John\nselect users\nexit\n")

	if !strings.Contains(out, "Error: [MD-STOR-5001]") || !strings.Contains(out, "disk full") {
		t.Errorf("commit failure not reported:\n%s", out)
	}
	if store.selects != 1 {
		t.Errorf("loop stopped after commit failure, selects = %d", store.selects)
	}
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	out := runREPL(t, newMemStore(), "\n   \n\t\nexit\n")
	if strings.Contains(out, "Error") {
		t.Errorf("blank line produced an error:\n%s", out)
	}
	if n := strings.Count(out, Prompt); n != 4 {
		t.Errorf("prompt printed %d times, want 4", n)
	}
}

func TestREPL_History(t *testing.T) {
	out := runREPL(t, newMemStore(), "select a\nselect b\nhistory\nexit\n")
	if !strings.Contains(out, "   1  select a\n") || !strings.Contains(out, "   3  history\n") {
		t.Errorf("history listing wrong:\n%s", out)
	}
}

func TestREPL_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(newMemStore(), WithInput(pr), WithOutput(&out)).Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if !strings.Contains(out.String(), "Interrupted. Goodbye!") {
		t.Errorf("missing interrupt message:\n%s", out.String())
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestREPL_ReadError(t *testing.T) {
	var out bytes.Buffer
	err := New(newMemStore(), WithInput(errReader{}), WithOutput(&out)).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "tty gone") {
		t.Fatalf("Run err = %v, want read error", err)
	}
}
