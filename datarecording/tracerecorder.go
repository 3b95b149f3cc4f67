package datarecording

import (
	"strconv"
	"strings"

	"github.com/sarchlab/pagesim/report"
	"github.com/sarchlab/pagesim/simulation"
)

// Table names used by the TraceRecorder.
const (
	RunTableName   = "runs"
	TraceTableName = "trace_entries"
)

// A RunEntry is one row of the runs table, summarizing a completed
// simulation run.
type RunEntry struct {
	RunID      string
	Policy     string
	FrameCount int
	References string
	Hits       int
	Faults     int
	HitRatio   float64
}

// A StepEntry is one row of the trace table, recording the outcome of a
// single reference. Victim is -1 when no resident page was evicted.
type StepEntry struct {
	RunID  string
	Step   int
	Page   int
	Hit    bool
	Victim int
	Frames string
}

// TraceRecorder persists completed simulation runs, one row per run in
// the runs table and one row per step in the trace table.
type TraceRecorder struct {
	recorder DataRecorder
}

// NewTraceRecorder creates a TraceRecorder backed by a fresh SQLite
// database at the given path.
func NewTraceRecorder(path string) *TraceRecorder {
	r := &TraceRecorder{
		recorder: NewDataRecorder(path),
	}

	r.recorder.CreateTable(RunTableName, RunEntry{})
	r.recorder.CreateTable(TraceTableName, StepEntry{})

	return r
}

// RecordRun records a completed run and its trace.
func (r *TraceRecorder) RecordRun(
	s *simulation.Simulation,
	trace simulation.Trace,
) {
	summary := report.Summarize(trace)

	r.recorder.InsertData(RunTableName, RunEntry{
		RunID:      s.ID(),
		Policy:     s.Policy().String(),
		FrameCount: s.FrameCount(),
		References: joinInts(s.References()),
		Hits:       summary.Hits,
		Faults:     summary.Faults,
		HitRatio:   summary.HitRatio,
	})

	for _, entry := range trace {
		r.recorder.InsertData(TraceTableName, StepEntry{
			RunID:  s.ID(),
			Step:   entry.Step,
			Page:   entry.Page,
			Hit:    entry.Hit,
			Victim: entry.Victim,
			Frames: report.FrameString(entry.Frames),
		})
	}
}

// Flush writes all buffered rows into the database.
func (r *TraceRecorder) Flush() {
	r.recorder.Flush()
}

// Close flushes and closes the underlying database.
func (r *TraceRecorder) Close() {
	r.recorder.Close()
}

func joinInts(values []int) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}

	return strings.Join(strs, " ")
}
