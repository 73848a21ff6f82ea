// Package journal persists streams through database/sql: a Recorder
// sink appends every event of a stream as one row, and Replay plays a
// recorded stream back in order. Payloads cross the database boundary
// as text via caller-supplied codecs.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// Encoder renders a payload to its stored text form.
type Encoder[T any] func(T) (string, error)

// Decoder parses a payload back out of its stored text form.
type Decoder[T any] func(string) (T, error)

// Event kinds as stored in the kind column.
const (
	kindValue     = "value"
	kindCompleted = "completed"
	kindError     = "error"
	kindStopped   = "stopped"
)

const schema = `
CREATE TABLE IF NOT EXISTS pulse_journal (
	stream  TEXT    NOT NULL,
	seq     INTEGER NOT NULL,
	kind    TEXT    NOT NULL,
	payload TEXT    NOT NULL DEFAULT '',
	detail  TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (stream, seq)
)`

// Init creates the journal table if it does not exist.
func Init(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// ErrTruncated reports a replayed stream whose journal holds no
// terminal event: the recording was cut off before the stream ended.
var ErrTruncated = errors.New("journal: recorded stream has no terminal event")

// recorder owns one stream's append cursor.
type recorder struct {
	mu  sync.Mutex
	seq int64
}

func (r *recorder) nextSeq() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq
}

// Recorder returns a sink that appends every event it receives to the
// journal under the given stream name. A sink has no return path, so
// write failures are reported through onErr (which may be nil).
func Recorder[T any](db *sql.DB, stream string, enc Encoder[T], onErr func(error)) core.Sink[T] {
	r := &recorder{}
	return func(e core.Event[T]) {
		var kind, payload, detail string
		switch {
		case e.IsValue():
			text, err := enc(e.Value())
			if err != nil {
				if onErr != nil {
					onErr(fmt.Errorf("journal: encode stream %q: %w", stream, err))
				}
				return
			}
			kind, payload = kindValue, text
		case e.IsCompleted():
			kind = kindCompleted
		case e.IsError():
			kind, detail = kindError, e.Error().Error()
		default:
			kind = kindStopped
		}

		_, err := db.Exec(
			`INSERT INTO pulse_journal (stream, seq, kind, payload, detail) VALUES (?, ?, ?, ?, ?)`,
			stream, r.nextSeq(), kind, payload, detail,
		)
		if err != nil && onErr != nil {
			onErr(fmt.Errorf("journal: append to stream %q: %w", stream, err))
		}
	}
}

// Replay returns an emitter that plays the recorded stream back in
// sequence order, synchronously. A journal with no terminal row ends
// with an Error wrapping ErrTruncated; the emission finishes before
// the emitter returns, so the terminator is core.Finished.
func Replay[T any](db *sql.DB, stream string, dec Decoder[T]) core.Emitter[T] {
	return func(down core.Sink[T]) core.Terminator {
		rows, err := db.Query(
			`SELECT kind, payload, detail FROM pulse_journal WHERE stream = ? ORDER BY seq`,
			stream,
		)
		if err != nil {
			down(core.Err[T](fmt.Errorf("journal: read stream %q: %w", stream, err)))
			return core.Finished{}
		}
		defer rows.Close()

		for rows.Next() {
			var kind, payload, detail string
			if err := rows.Scan(&kind, &payload, &detail); err != nil {
				down(core.Err[T](fmt.Errorf("journal: read stream %q: %w", stream, err)))
				return core.Finished{}
			}

			switch kind {
			case kindValue:
				v, err := dec(payload)
				if err != nil {
					down(core.Err[T](fmt.Errorf("journal: decode stream %q: %w", stream, err)))
					return core.Finished{}
				}
				down(core.Ok(v))
			case kindCompleted:
				down(core.Completed[T]())
				return core.Finished{}
			case kindError:
				down(core.Err[T](errors.New(detail)))
				return core.Finished{}
			case kindStopped:
				down(core.Stopped[T]())
				return core.Finished{}
			default:
				down(core.Err[T](fmt.Errorf("journal: stream %q has unknown event kind %q", stream, kind)))
				return core.Finished{}
			}
		}
		if err := rows.Err(); err != nil {
			down(core.Err[T](fmt.Errorf("journal: read stream %q: %w", stream, err)))
			return core.Finished{}
		}

		down(core.Err[T](fmt.Errorf("journal: stream %q: %w", stream, ErrTruncated)))
		return core.Finished{}
	}
}
