package props

import (
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// PropertySet is a flat key/value property mapping. Merging is
// last-write-wins.
type PropertySet map[string]string

// Merge copies every entry of other into ps, overwriting existing keys.
func (ps PropertySet) Merge(other PropertySet) {
	for k, v := range other {
		ps[k] = v
	}
}

// Clone returns an independent copy of ps
func (ps PropertySet) Clone() PropertySet {
	out := make(PropertySet, len(ps))
	for k, v := range ps {
		out[k] = v
	}
	return out
}

// Keys returns the keys of ps in sorted order
func (ps PropertySet) Keys() []string {
	keys := make([]string, 0, len(ps))
	for k := range ps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// processProps holds the process-wide property overrides. The slot is
// replaced wholesale, never mutated in place, so readers cannot observe
// a torn write.
var processProps atomic.Pointer[PropertySet]

// SetProperties replaces the process-wide property overrides. It is
// meant to be called once during process initialization, before
// concurrent readers start; later calls are last-write-wins.
func SetProperties(ps PropertySet) {
	snapshot := ps.Clone()
	processProps.Store(&snapshot)
}

// Properties returns the current process-wide property overrides.
// The returned set must be treated as read-only.
func Properties() PropertySet {
	if p := processProps.Load(); p != nil {
		return *p
	}
	return PropertySet{}
}

// SystemProperty looks a key up in the environment first, then in the
// process-wide property overrides.
func SystemProperty(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return Properties()[key]
}

// IsEmpty reports whether a property value should be treated as unset.
// Besides the empty string, the conventional "off" spellings count.
func IsEmpty(value string) bool {
	switch strings.ToLower(value) {
	case "", "false", "0", "null", "n/a":
		return true
	}
	return false
}

// IsNotEmpty is the negation of IsEmpty
func IsNotEmpty(value string) bool {
	return !IsEmpty(value)
}

// IsDefault reports whether a property value asks for default behavior
func IsDefault(value string) bool {
	switch strings.ToLower(value) {
	case "true", "default":
		return true
	}
	return false
}

var (
	pidOnce sync.Once
	pid     int
)

// Pid returns the cached process id
func Pid() int {
	pidOnce.Do(func() {
		pid = os.Getpid()
	})
	return pid
}
