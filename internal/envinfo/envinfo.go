// Package envinfo inspects the process environment: typed environment
// variable lookups, process resource statistics, and terminal
// capability detection for the environment overlay.
package envinfo

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/shirou/gopsutil/v4/process"
)

// Var is one environment variable.
type Var struct {
	Key   string
	Value string
}

// Environ returns the process environment as key/value pairs sorted by
// key. Malformed entries without a separator are skipped.
func Environ() []Var {
	raw := os.Environ()
	vars := make([]Var, 0, len(raw))
	for _, entry := range raw {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		vars = append(vars, Var{Key: key, Value: value})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Key < vars[j].Key })
	return vars
}

// Hostname returns the host name, or "unknown" when it cannot be read.
func Hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

// WithPrefix returns the environment variables whose key starts with
// prefix, sorted by key.
func WithPrefix(prefix string) []Var {
	var out []Var
	for _, v := range Environ() {
		if strings.HasPrefix(v.Key, prefix) {
			out = append(out, v)
		}
	}
	return out
}

// Lookup returns the value of key and whether it is set. Unlike
// os.Getenv, an empty value set in the environment reports true.
func Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Bool reads key as a boolean using strconv semantics ("1", "t",
// "true", ...). Unset or unparseable values return fallback.
func Bool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return v
}

// Int reads key as an integer. Unset or unparseable values return
// fallback.
func Int(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return v
}

// Stats is a point-in-time snapshot of the running process.
type Stats struct {
	PID        int32
	CPUPercent float64
	MemoryRSS  uint64
	NumThreads int32
	NumFDs     int32
}

// ProcessStats samples resource usage of the current process.
func ProcessStats() (Stats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open process: %w", err)
	}

	stats := Stats{PID: p.Pid}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	}
	if mem, err := p.MemoryInfo(); err == nil && mem != nil {
		stats.MemoryRSS = mem.RSS
	}
	if threads, err := p.NumThreads(); err == nil {
		stats.NumThreads = threads
	}
	if fds, err := p.NumFDs(); err == nil {
		stats.NumFDs = fds
	}
	return stats, nil
}

// TerminalProfile reports the color capability of the attached
// terminal as detected from the environment and output stream.
func TerminalProfile() string {
	return colorprofile.Detect(os.Stdout, os.Environ()).String()
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for u := n / unit; u >= unit; u /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
