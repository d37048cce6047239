// Package sysinfo reads host and process figures from procfs. Every reader
// returns an error on systems without /proc and callers leave the field out.
package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Root is the procfs mount point. Tests point it at a fixture directory.
var Root = "/proc"

// Memory is the host memory picture from meminfo.
type Memory struct {
	TotalBytes     uint64  `json:"total_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedPercent    float64 `json:"used_percent"`
}

// ReadMemory parses MemTotal and MemAvailable.
func ReadMemory() (Memory, error) {
	fields, err := readKeyed("meminfo", "MemTotal", "MemAvailable")
	if err != nil {
		return Memory{}, err
	}
	m := Memory{TotalBytes: fields["MemTotal"], AvailableBytes: fields["MemAvailable"]}
	if m.TotalBytes == 0 {
		return Memory{}, fmt.Errorf("meminfo: MemTotal missing")
	}
	m.UsedPercent = float64(m.TotalBytes-m.AvailableBytes) / float64(m.TotalBytes) * 100
	return m, nil
}

// ReadLoadAvg returns the 1, 5 and 15 minute load averages.
func ReadLoadAvg() ([3]float64, error) {
	var out [3]float64
	data, err := os.ReadFile(filepath.Join(Root, "loadavg"))
	if err != nil {
		return out, err
	}
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return out, fmt.Errorf("loadavg: unexpected format %q", data)
	}
	for i := range out {
		if out[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return out, fmt.Errorf("loadavg: %w", err)
		}
	}
	return out, nil
}

// ReadProcessRSS returns this process's resident set size in bytes.
func ReadProcessRSS() (uint64, error) {
	fields, err := readKeyed(filepath.Join("self", "status"), "VmRSS")
	if err != nil {
		return 0, err
	}
	rss, ok := fields["VmRSS"]
	if !ok {
		return 0, fmt.Errorf("status: VmRSS missing")
	}
	return rss, nil
}

// readKeyed scans a "Key:   123 kB" file and returns the wanted keys in bytes.
func readKeyed(name string, keys ...string) (map[string]uint64, error) {
	f, err := os.Open(filepath.Join(Root, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	out := make(map[string]uint64, len(keys))
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(out) < len(keys) {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok || !want[key] {
			continue
		}
		parts := strings.Fields(rest)
		if len(parts) == 0 {
			continue
		}
		n, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", name, key, err)
		}
		if len(parts) > 1 && parts[1] == "kB" {
			n *= 1024
		}
		out[key] = n
	}
	return out, scanner.Err()
}
