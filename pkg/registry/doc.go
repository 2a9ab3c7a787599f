// Package registry provides a generic, thread-safe name-to-item store.
// The extension package builds its namespaces on top of it and uses
// Has as the existence oracle when resolving extension directives.
package registry
