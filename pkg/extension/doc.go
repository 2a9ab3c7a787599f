// Package extension resolves which extensions are active for a
// pluggable component kind.
//
// Activation is driven by a directive string: a comma-separated list of
// extension names, optionally containing the sentinel "default" (marking
// where the system's default extensions are spliced in) and negation
// tokens prefixed with "-" ("-foo" removes foo, "-default" removes all
// defaults). Merge implements the resolution; Namespace ties it to a
// registry of extension factories whose registrations act as the
// existence filter for default names.
package extension
