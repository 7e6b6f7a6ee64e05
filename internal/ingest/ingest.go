// Package ingest parses edge streams from flat datasets into
// sketch.Edge values, for replay through a live Matrix by the CLI or
// the benchmark harness. Malformed records are skipped and counted
// rather than aborting the stream, mirroring the core's own
// reject-at-the-boundary policy for InvalidIdentifier.
package ingest

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	sketch "github.com/kestrel-data/geministore"
)

// ErrNoRecords is returned when a stream yields zero valid edges.
var ErrNoRecords = errors.New("ingest: no valid edge records found")

// Stats tallies what a CSV or JSONL call did, so callers (the CLI's
// ingest, query and bench commands) can report it without re-deriving it
// themselves.
type Stats struct {
	Accepted int
	Skipped  int
}

// jsonRecord is the newline-delimited JSON record shape: one edge per
// line, field names matching sketch.Edge's lowercase spelling.
type jsonRecord struct {
	Source      sketch.VID    `json:"source"`
	Destination sketch.VID    `json:"destination"`
	Weight      sketch.Weight `json:"weight"`
	Time        sketch.Time   `json:"time"`
}

// CSV reads comma-separated "source,destination,weight,time" records
// from r (no header row), calling visit for each valid edge in file
// order. It never returns early on a malformed row; it counts and
// continues.
func CSV(r io.Reader, visit func(sketch.Edge)) (Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	var stats Stats
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Skipped++
			continue
		}
		e, ok := parseCSVRow(rec)
		if !ok {
			stats.Skipped++
			continue
		}
		stats.Accepted++
		visit(e)
	}
	if stats.Accepted == 0 {
		return stats, ErrNoRecords
	}
	return stats, nil
}

func parseCSVRow(rec []string) (sketch.Edge, bool) {
	s, err1 := strconv.ParseInt(rec[0], 10, 32)
	d, err2 := strconv.ParseInt(rec[1], 10, 32)
	w, err3 := strconv.ParseInt(rec[2], 10, 64)
	t, err4 := strconv.ParseInt(rec[3], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return sketch.Edge{}, false
	}
	if s == 0 || d == 0 {
		return sketch.Edge{}, false
	}
	return sketch.Edge{
		Source:      sketch.VID(s),
		Destination: sketch.VID(d),
		Weight:      sketch.Weight(w),
		Time:        sketch.Time(t),
	}, true
}

// JSONL reads newline-delimited JSON edge records from r, calling
// visit for each valid edge in file order.
func JSONL(r io.Reader, visit func(sketch.Edge)) (Stats, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var stats Stats
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec jsonRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			stats.Skipped++
			continue
		}
		if rec.Source == 0 || rec.Destination == 0 {
			stats.Skipped++
			continue
		}
		stats.Accepted++
		visit(sketch.Edge{
			Source:      rec.Source,
			Destination: rec.Destination,
			Weight:      rec.Weight,
			Time:        rec.Time,
		})
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}
	if stats.Accepted == 0 {
		return stats, ErrNoRecords
	}
	return stats, nil
}
