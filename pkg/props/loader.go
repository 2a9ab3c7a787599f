package props

import (
	"os"
	"sync/atomic"

	"github.com/magiconair/properties"
	"github.com/rs/zerolog"

	"github.com/extload/extload/pkg/errors"
	"github.com/extload/extload/pkg/logging"
)

// Loader loads properties from a literal file path or from resources
// discovered on a search path. Load never returns an error: failed
// sources contribute nothing and are logged.
type Loader struct {
	finder   Finder
	encoding properties.Encoding
	log      zerolog.Logger
}

// NewLoader creates a Loader over the given finder, reading UTF-8 text
func NewLoader(finder Finder) *Loader {
	return &Loader{
		finder:   finder,
		encoding: properties.UTF8,
		log:      logging.GetLogger("props"),
	}
}

// WithEncoding sets the text encoding used when reading sources
func (l *Loader) WithEncoding(enc properties.Encoding) *Loader {
	l.encoding = enc
	return l
}

// Load resolves name into a merged PropertySet.
//
// A regular file at the literal path name short-circuits search-path
// discovery entirely. Otherwise every match on the search path is
// considered: with allowMultiple they are merged in discovery order
// under last-write-wins, without it more than one match is reported as
// ambiguous and the single default resolution is loaded instead.
// A missing resource yields an empty set, logged unless optional.
func (l *Loader) Load(name string, allowMultiple, optional bool) PropertySet {
	out := PropertySet{}

	if isRegularFile(name) {
		set, err := l.readFile(name)
		if err != nil {
			l.log.Warn().Str("file", name).Err(err).Msg("failed to load properties file, ignoring it")
			return out
		}
		return set
	}

	matches := l.finder.FindAll(name)
	if len(matches) == 0 {
		if !optional {
			l.log.Warn().Str("name", name).Str("code", string(errors.ErrResourceNotFound)).
				Msg("no properties resource found on the search path")
		}
		return out
	}

	if !allowMultiple {
		if len(matches) > 1 {
			l.log.Warn().Str("name", name).Int("found", len(matches)).Strs("locations", matches).
				Str("code", string(errors.ErrAmbiguousResource)).
				Msg("expected a single properties resource, falling back to default resolution")
		}
		path, ok := l.finder.FindFirst(name)
		if !ok {
			return out
		}
		set, err := l.readFile(path)
		if err != nil {
			l.log.Warn().Str("file", path).Err(err).Msg("failed to load properties resource, ignoring it")
			return out
		}
		return set
	}

	l.log.Info().Str("name", name).Strs("locations", matches).Msg("loading properties from search path")
	for _, path := range matches {
		set, err := l.readFile(path)
		if err != nil {
			l.log.Warn().Str("file", path).Err(err).Msg("failed to load properties resource, ignoring it")
			continue
		}
		out.Merge(set)
	}
	return out
}

// LoadMigrationRule resolves name the same way Load does (literal path
// first, else the single default search-path resolution) but returns
// the raw text content. Multiple matches are never merged; nothing
// found yields the empty string.
func (l *Loader) LoadMigrationRule(name string) string {
	path := name
	if !isRegularFile(name) {
		found, ok := l.finder.FindFirst(name)
		if !ok {
			return ""
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Warn().Str("file", path).Err(err).Msg("failed to load migration rule, ignoring it")
		return ""
	}
	return string(data)
}

func (l *Loader) readFile(path string) (PropertySet, error) {
	// Expansion stays off so values come back verbatim
	pl := &properties.Loader{Encoding: l.encoding, DisableExpansion: true}
	p, err := pl.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReadFailure, "failed to read %s", path)
	}
	return PropertySet(p.Map()), nil
}

// std is the package-level loader used by the bootstrap-style entry
// points below. Swapped atomically, never mutated.
var std atomic.Pointer[Loader]

func init() {
	std.Store(NewLoader(SearchPath{"."}))
}

// SetDefault replaces the package-level loader
func SetDefault(l *Loader) {
	std.Store(l)
}

// Default returns the package-level loader
func Default() *Loader {
	return std.Load()
}

// Load resolves name with the package-level loader
func Load(name string, allowMultiple, optional bool) PropertySet {
	return Default().Load(name, allowMultiple, optional)
}

// LoadMigrationRule resolves name with the package-level loader
func LoadMigrationRule(name string) string {
	return Default().LoadMigrationRule(name)
}
