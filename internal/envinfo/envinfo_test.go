package envinfo

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironSortedAndComplete(t *testing.T) {
	t.Setenv("TUIKIT_TEST_AAA", "1")
	t.Setenv("TUIKIT_TEST_ZZZ", "2")

	vars := Environ()
	keys := make([]string, len(vars))
	for i, v := range vars {
		keys[i] = v.Key
	}
	assert.True(t, sort.StringsAreSorted(keys), "Environ should be sorted by key")

	found := 0
	for _, v := range vars {
		if v.Key == "TUIKIT_TEST_AAA" || v.Key == "TUIKIT_TEST_ZZZ" {
			found++
		}
	}
	assert.Equal(t, 2, found, "both injected variables should be present")
}

func TestWithPrefix(t *testing.T) {
	t.Setenv("TUIKITPFX_ONE", "a")
	t.Setenv("TUIKITPFX_TWO", "b")
	t.Setenv("OTHER_VAR", "c")

	vars := WithPrefix("TUIKITPFX_")
	require.Len(t, vars, 2)
	assert.Equal(t, "TUIKITPFX_ONE", vars[0].Key)
	assert.Equal(t, "TUIKITPFX_TWO", vars[1].Key)
}

func TestLookupDistinguishesEmptyFromUnset(t *testing.T) {
	t.Setenv("TUIKIT_EMPTY", "")
	_, ok := Lookup("TUIKIT_EMPTY")
	assert.True(t, ok, "empty but set variable should report ok")
	_, ok = Lookup("TUIKIT_DEFINITELY_UNSET_VAR")
	assert.False(t, ok, "unset variable should not report ok")
}

func TestBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"TRUE", false, true},
		{"0", true, false},
		{"false", true, false},
		{" true ", false, true},
		{"yes", false, false}, // not a strconv boolean
		{"garbage", true, true},
	}
	for _, tt := range tests {
		t.Setenv("TUIKIT_BOOL", tt.value)
		assert.Equal(t, tt.want, Bool("TUIKIT_BOOL", tt.fallback), "Bool(%q, %v)", tt.value, tt.fallback)
	}
	assert.True(t, Bool("TUIKIT_BOOL_UNSET", true), "unset should return fallback")
}

func TestInt(t *testing.T) {
	t.Setenv("TUIKIT_INT", "42")
	assert.Equal(t, 42, Int("TUIKIT_INT", 7))
	t.Setenv("TUIKIT_INT", "not a number")
	assert.Equal(t, 7, Int("TUIKIT_INT", 7), "garbage value should return fallback")
	assert.Equal(t, 7, Int("TUIKIT_INT_UNSET", 7), "unset should return fallback")
}

func TestHostname(t *testing.T) {
	assert.NotEmpty(t, Hostname())
}

func TestProcessStats(t *testing.T) {
	stats, err := ProcessStats()
	require.NoError(t, err)
	assert.Positive(t, stats.PID)
	assert.NotZero(t, stats.MemoryRSS, "a running process should report nonzero RSS")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{1073741824, "1.0 GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.n), "FormatBytes(%d)", tt.n)
	}
}
