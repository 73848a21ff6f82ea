package journal

import (
	"database/sql"
	"errors"
	"strconv"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/min-pulse/pulse/core"
	"github.com/lguimbarda/min-pulse/pulse/source"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Init(db); err != nil {
		t.Fatalf("failed to create journal table: %v", err)
	}
	return db
}

func intEncoder(v int) (string, error) { return strconv.Itoa(v), nil }
func intDecoder(s string) (int, error) { return strconv.Atoi(s) }

type capture[T any] struct {
	values   []T
	terminal *core.Event[T]
}

func (c *capture[T]) sink() core.Sink[T] {
	return func(e core.Event[T]) {
		if e.IsValue() {
			c.values = append(c.values, e.Value())
			return
		}
		ev := e
		c.terminal = &ev
	}
}

func TestRecordAndReplayRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	rec := Recorder(db, "numbers", intEncoder, func(err error) { t.Errorf("recorder: %v", err) })
	core.Attach(source.Slice([]int{7, 8, 9}), rec)

	var c capture[int]
	core.Attach(Replay(db, "numbers", intDecoder), c.sink())

	want := []int{7, 8, 9}
	if len(c.values) != len(want) {
		t.Fatalf("replayed %v, want %v", c.values, want)
	}
	for i := range want {
		if c.values[i] != want[i] {
			t.Fatalf("replayed %v, want %v", c.values, want)
		}
	}
	if c.terminal == nil || !c.terminal.IsCompleted() {
		t.Fatalf("terminal = %+v, want completed", c.terminal)
	}
}

func TestReplayPreservesErrorTerminal(t *testing.T) {
	db := setupTestDB(t)

	rec := Recorder(db, "failing", intEncoder, nil)
	rec(core.Ok(1))
	rec(core.Err[int](errors.New("boom")))

	var c capture[int]
	core.Attach(Replay(db, "failing", intDecoder), c.sink())

	if len(c.values) != 1 || c.values[0] != 1 {
		t.Fatalf("replayed %v, want [1]", c.values)
	}
	if c.terminal == nil || c.terminal.Error() == nil || c.terminal.Error().Error() != "boom" {
		t.Fatalf("terminal = %+v, want error \"boom\"", c.terminal)
	}
}

func TestReplayPreservesStoppedTerminal(t *testing.T) {
	db := setupTestDB(t)

	rec := Recorder(db, "cancelled", intEncoder, nil)
	rec(core.Ok(1))
	rec(core.Stopped[int]())

	var c capture[int]
	core.Attach(Replay(db, "cancelled", intDecoder), c.sink())

	if c.terminal == nil || !c.terminal.IsStopped() {
		t.Fatalf("terminal = %+v, want stopped", c.terminal)
	}
}

func TestReplayTruncatedJournal(t *testing.T) {
	db := setupTestDB(t)

	rec := Recorder(db, "partial", intEncoder, nil)
	rec(core.Ok(1))
	rec(core.Ok(2))
	// No terminal recorded.

	var c capture[int]
	core.Attach(Replay(db, "partial", intDecoder), c.sink())

	if len(c.values) != 2 {
		t.Fatalf("replayed %v, want [1 2]", c.values)
	}
	if c.terminal == nil || !errors.Is(c.terminal.Error(), ErrTruncated) {
		t.Fatalf("terminal = %+v, want ErrTruncated", c.terminal)
	}
}

func TestStreamsAreIsolated(t *testing.T) {
	db := setupTestDB(t)

	core.Attach(source.Slice([]int{1}), Recorder(db, "a", intEncoder, nil))
	core.Attach(source.Slice([]int{2}), Recorder(db, "b", intEncoder, nil))

	var c capture[int]
	core.Attach(Replay(db, "a", intDecoder), c.sink())

	if len(c.values) != 1 || c.values[0] != 1 {
		t.Fatalf("stream a replayed %v, want [1]", c.values)
	}
}
