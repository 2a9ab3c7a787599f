package extension

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/extload/extload/pkg/errors"
	"github.com/extload/extload/pkg/logging"
	"github.com/extload/extload/pkg/registry"
)

// Factory creates a new extension instance with the given options
type Factory func(options map[string]interface{}) (interface{}, error)

// Namespace is a named registry of extension factories for one
// component kind (e.g. "filter", "router"). Its registrations are the
// existence oracle used when resolving directives against defaults.
type Namespace struct {
	kind string
	reg  registry.Registry[Factory]
	log  zerolog.Logger
}

// NewNamespace creates an empty namespace for the given kind
func NewNamespace(kind string) *Namespace {
	return &Namespace{
		kind: kind,
		reg:  registry.New[Factory](),
		log:  logging.GetLogger("extension." + kind),
	}
}

// Kind returns the component kind this namespace serves
func (n *Namespace) Kind() string {
	return n.kind
}

// Register adds a factory under the given extension name
func (n *Namespace) Register(name string, factory Factory) error {
	if err := n.reg.Register(name, factory); err != nil {
		return err
	}
	n.log.Debug().Str("name", name).Msg("extension registered")
	return nil
}

// Has reports whether an extension name is registered
func (n *Namespace) Has(name string) bool {
	return n.reg.Has(name)
}

// Names returns all registered extension names in sorted order
func (n *Namespace) Names() []string {
	return n.reg.Names()
}

// Create instantiates a registered extension by name
func (n *Namespace) Create(name string, options map[string]interface{}) (interface{}, error) {
	factory, err := n.reg.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExtensionNotFound,
			"no extension %q in namespace %q", name, n.kind)
	}

	ext, err := factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExtensionCreate,
			"failed to create extension %q", name)
	}
	return ext, nil
}

// ActiveNames resolves the effective extension list for this namespace,
// filtering the defaults through the namespace's registrations.
func (n *Namespace) ActiveNames(directive string, defaults []string) []string {
	return Merge(defaults, directive, n.Has)
}

var (
	nsMu       sync.Mutex
	namespaces = make(map[string]*Namespace)
)

// GetNamespace returns the process-wide namespace for a kind, creating
// it on first use.
func GetNamespace(kind string) *Namespace {
	nsMu.Lock()
	defer nsMu.Unlock()

	ns, ok := namespaces[kind]
	if !ok {
		ns = NewNamespace(kind)
		namespaces[kind] = ns
	}
	return ns
}
