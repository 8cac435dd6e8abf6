// Package journal records the observable output of a demo run so it can be
// saved and inspected later.
package journal

import (
	"fmt"
	"time"

	"patterns/internal/clock"
	"patterns/internal/editor"
)

// Scenario identifies which demo section produced an entry.
type Scenario string

const (
	ScenarioObserver Scenario = "observer"
	ScenarioStrategy Scenario = "strategy"
	ScenarioCommand  Scenario = "command"
)

// Scenarios returns every scenario in demo order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioObserver, ScenarioStrategy, ScenarioCommand}
}

// Entry is one reported event.
type Entry struct {
	Scenario Scenario  `json:"scenario"`
	Op       string    `json:"op"`     // e.g. "notify", "sort", "write", "undo"
	Detail   string    `json:"detail"` // resulting content or summary
	At       time.Time `json:"at"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", e.At.Format("15:04:05"), e.Scenario, e.Op, e.Detail)
}

// Recorder accumulates entries in the order they are recorded.
type Recorder struct {
	clock   clock.Clock
	entries []Entry
}

// NewRecorder returns an empty recorder stamping entries with c.
func NewRecorder(c clock.Clock) *Recorder {
	return &Recorder{clock: clock.OrReal(c)}
}

// Record appends an entry stamped with the recorder's clock.
func (r *Recorder) Record(s Scenario, op, detail string) {
	r.entries = append(r.entries, Entry{Scenario: s, Op: op, Detail: detail, At: r.clock.Now()})
}

// OnEdit records editor events under the command scenario, keeping the
// buffer's own timestamp.
func (r *Recorder) OnEdit(e editor.Event) {
	r.entries = append(r.entries, Entry{Scenario: ScenarioCommand, Op: string(e.Op), Detail: e.Content, At: e.At})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Filter returns the entries belonging to s.
func Filter(entries []Entry, s Scenario) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Scenario == s {
			out = append(out, e)
		}
	}
	return out
}
