// Package props loads key/value configuration properties from layered
// sources.
//
// A Loader resolves a resource name either as a literal filesystem path
// (which always wins) or against an ordered search path, merging
// multiple matches under last-write-wins precedence when the caller
// allows it. Loads never fail: a missing or unreadable source degrades
// to an empty or partial result plus a log record, so a configuration
// hiccup can never block startup.
//
// Files use the Java properties format: key=value or key:value lines,
// '#' and '!' comments, ISO-8859-1 or UTF-8 text.
package props
