// Package report renders completed simulation traces and computes
// aggregate statistics.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/pagesim/mem/frames"
	"github.com/sarchlab/pagesim/mem/replacement"
	"github.com/sarchlab/pagesim/simulation"
)

// A Summary aggregates the hit and fault counts of a trace.
type Summary struct {
	Hits     int     `json:"hits"`
	Faults   int     `json:"faults"`
	HitRatio float64 `json:"hit_ratio"`
}

// Summarize computes the summary of a trace. The hit ratio of an empty
// trace is 0.
func Summarize(trace simulation.Trace) Summary {
	s := Summary{}

	for _, entry := range trace {
		if entry.Hit {
			s.Hits++
		} else {
			s.Faults++
		}
	}

	if len(trace) > 0 {
		s.HitRatio = float64(s.Hits) / float64(len(trace))
	}

	return s
}

// Write renders the trace as a table followed by the summary line.
func Write(w io.Writer, trace simulation.Trace) {
	fmt.Fprintf(w, "%-6s%-8s%-8s%-10s%s\n",
		"Step", "Page", "Hit?", "Victim", "Frames")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, entry := range trace {
		hit := "No"
		if entry.Hit {
			hit = "Yes"
		}

		victim := "-"
		if entry.Victim != replacement.NoVictim {
			victim = strconv.Itoa(entry.Victim)
		}

		fmt.Fprintf(w, "%-6d%-8d%-8s%-10s%s\n",
			entry.Step, entry.Page, hit, victim, FrameString(entry.Frames))
	}

	s := Summarize(trace)
	fmt.Fprintf(w, "\nHits: %d, Faults: %d, Hit Ratio: %.4f\n",
		s.Hits, s.Faults, s.HitRatio)
}

// FrameString renders a frame snapshot, one cell per slot, "-" for an
// empty slot.
func FrameString(snapshot []frames.Frame) string {
	cells := make([]string, len(snapshot))
	for i, f := range snapshot {
		if f.Valid {
			cells[i] = strconv.Itoa(f.Page)
		} else {
			cells[i] = "-"
		}
	}

	return "[" + strings.Join(cells, " | ") + "]"
}
