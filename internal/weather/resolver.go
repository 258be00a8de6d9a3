package weather

import (
	"fmt"
	"regexp"
	"strings"
)

var nonKeyChars = regexp.MustCompile(`[^a-z0-9 ]`)

// Resolver matches free-text queries against a catalog.
type Resolver struct {
	catalog    *Catalog
	defaultKey string
	rnd        Source
}

// NewResolver creates a Resolver. defaultKey may be empty, in which case the
// fallback is a random catalog entry. A non-empty defaultKey must be cataloged.
func NewResolver(catalog *Catalog, defaultKey string, rnd Source) (*Resolver, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if defaultKey != "" {
		if _, ok := catalog.Lookup(defaultKey); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, defaultKey)
		}
	}
	return &Resolver{
		catalog:    catalog,
		defaultKey: defaultKey,
		rnd:        rnd,
	}, nil
}

// Resolve always returns a city. When nothing matches, the fallback entry
// is returned with Fallback set.
func (r *Resolver) Resolve(query string) ResolvedCity {
	if key, ok := r.match(query); ok {
		rec, _ := r.catalog.Lookup(key)
		return ResolvedCity{Key: key, Record: rec}
	}
	fb := r.Fallback()
	fb.Fallback = true
	return fb
}

func (r *Resolver) match(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	if _, ok := r.catalog.Lookup(q); ok {
		return q, true
	}

	cleaned := nonKeyChars.ReplaceAllString(q, "")
	if _, ok := r.catalog.Lookup(cleaned); ok {
		return cleaned, true
	}

	keys := r.catalog.Keys()
	for _, k := range keys {
		if strings.Contains(k, q) || strings.Contains(q, k) {
			return k, true
		}
	}

	first := strings.Split(q, " ")[0]
	for _, k := range keys {
		if strings.Split(k, " ")[0] == first {
			return k, true
		}
	}

	return "", false
}

// Default returns the designated startup city: the configured default key,
// else DefaultCityKey, else the first catalog entry. It never draws randomly.
func (r *Resolver) Default() ResolvedCity {
	for _, k := range []string{r.defaultKey, DefaultCityKey} {
		if k == "" {
			continue
		}
		if rec, ok := r.catalog.Lookup(k); ok {
			return ResolvedCity{Key: k, Record: rec}
		}
	}
	k := r.catalog.Keys()[0]
	rec, _ := r.catalog.Lookup(k)
	return ResolvedCity{Key: k, Record: rec}
}

// Fallback returns the default city, or a random catalog entry when no
// default is configured.
func (r *Resolver) Fallback() ResolvedCity {
	if r.defaultKey != "" {
		if rec, ok := r.catalog.Lookup(r.defaultKey); ok {
			return ResolvedCity{Key: r.defaultKey, Record: rec}
		}
	}
	keys := r.catalog.Keys()
	i := int(r.rnd.Float64() * float64(len(keys)))
	if i >= len(keys) {
		i = len(keys) - 1
	}
	rec, _ := r.catalog.Lookup(keys[i])
	return ResolvedCity{Key: keys[i], Record: rec}
}
