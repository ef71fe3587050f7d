package alert

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}\S* - .+$`)

func TestFileSink_WritesTimestampDashMessageLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.log")
	sink, err := NewFileSink(path)
	require.NoError(t, err)

	rec, ok := Evaluate(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), 90, 85)
	require.True(t, ok)
	require.NoError(t, sink.Write(rec))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Regexp(t, lineRe, lines[0])
	assert.Contains(t, lines[0], "2024-03-01T12:00:00")
	assert.Contains(t, lines[0], " - CPU usage at 90.0% exceeded threshold of 85%")
}

func TestFileSink_OneLinePerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.log")
	sink, err := NewFileSink(path)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rec, _ := Evaluate(time.Now(), 99, 85)
		require.NoError(t, sink.Write(rec))
	}
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 3)
	for _, l := range lines {
		assert.Regexp(t, lineRe, l)
	}
}

func TestFileSink_AppendsAcrossReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.log")

	for i := 0; i < 2; i++ {
		sink, err := NewFileSink(path)
		require.NoError(t, err)
		rec, _ := Evaluate(time.Now(), 99, 85)
		require.NoError(t, sink.Write(rec))
		require.NoError(t, sink.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestNewFileSink_BadPath(t *testing.T) {
	_, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "alerts.log"))
	assert.Error(t, err)
}
