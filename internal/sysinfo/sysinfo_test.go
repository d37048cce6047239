package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProc(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	old := Root
	Root = dir
	t.Cleanup(func() { Root = old })
}

func TestReadMemory(t *testing.T) {
	fakeProc(t, map[string]string{
		"meminfo": "MemTotal:        1000 kB\nMemFree:          100 kB\nMemAvailable:     250 kB\n",
	})

	m, err := ReadMemory()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000*1024), m.TotalBytes)
	assert.Equal(t, uint64(250*1024), m.AvailableBytes)
	assert.InDelta(t, 75.0, m.UsedPercent, 0.001)
}

func TestReadMemoryMissingTotal(t *testing.T) {
	fakeProc(t, map[string]string{"meminfo": "MemAvailable: 10 kB\n"})

	_, err := ReadMemory()
	assert.Error(t, err)
}

func TestReadLoadAvg(t *testing.T) {
	fakeProc(t, map[string]string{"loadavg": "0.50 1.25 2.00 1/123 4567\n"})

	load, err := ReadLoadAvg()
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.5, 1.25, 2}, load)
}

func TestReadLoadAvgMalformed(t *testing.T) {
	fakeProc(t, map[string]string{"loadavg": "0.50\n"})

	_, err := ReadLoadAvg()
	assert.Error(t, err)
}

func TestReadProcessRSS(t *testing.T) {
	fakeProc(t, map[string]string{
		"self/status": "Name:\tgovjobs\nVmPeak:\t 9000 kB\nVmRSS:\t 2048 kB\n",
	})

	rss, err := ReadProcessRSS()
	require.NoError(t, err)
	assert.Equal(t, uint64(2048*1024), rss)
}

func TestMissingProc(t *testing.T) {
	fakeProc(t, nil)

	_, err := ReadMemory()
	assert.Error(t, err)
	_, err = ReadProcessRSS()
	assert.Error(t, err)
}
