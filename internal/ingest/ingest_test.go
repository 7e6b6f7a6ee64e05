package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sketch "github.com/kestrel-data/geministore"
	"github.com/kestrel-data/geministore/internal/ingest"
)

func TestCSV_ParsesValidRows(t *testing.T) {
	in := "1,2,10,1\n2,3,5,2\n"
	var got []sketch.Edge
	stats, err := ingest.CSV(strings.NewReader(in), func(e sketch.Edge) { got = append(got, e) })
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Accepted)
	assert.Equal(t, 0, stats.Skipped)
	require.Len(t, got, 2)
	assert.Equal(t, sketch.Edge{Source: 1, Destination: 2, Weight: 10, Time: 1}, got[0])
}

func TestCSV_SkipsMalformedRows(t *testing.T) {
	in := "1,2,10,1\n0,2,10,1\nnotanumber,2,10,1\n2,3,5,2\n"
	var got []sketch.Edge
	stats, err := ingest.CSV(strings.NewReader(in), func(e sketch.Edge) { got = append(got, e) })
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Accepted)
	assert.Equal(t, 2, stats.Skipped)
}

func TestCSV_NoValidRecordsIsError(t *testing.T) {
	_, err := ingest.CSV(strings.NewReader("0,0,0,0\n"), func(sketch.Edge) {})
	assert.ErrorIs(t, err, ingest.ErrNoRecords)
}

func TestJSONL_ParsesValidRows(t *testing.T) {
	in := `{"source":1,"destination":2,"weight":10,"time":1}
{"source":2,"destination":3,"weight":5,"time":2}
`
	var got []sketch.Edge
	stats, err := ingest.JSONL(strings.NewReader(in), func(e sketch.Edge) { got = append(got, e) })
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Accepted)
	require.Len(t, got, 2)
	assert.Equal(t, sketch.Edge{Source: 2, Destination: 3, Weight: 5, Time: 2}, got[1])
}

func TestJSONL_SkipsMalformedRows(t *testing.T) {
	in := "{\"source\":1,\"destination\":2,\"weight\":1,\"time\":1}\n" +
		"not json at all\n" +
		"{\"source\":0,\"destination\":2,\"weight\":1,\"time\":1}\n"
	stats, err := ingest.JSONL(strings.NewReader(in), func(sketch.Edge) {})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Accepted)
	assert.Equal(t, 2, stats.Skipped)
}
