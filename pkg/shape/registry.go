package shape

import (
	"maps"
	"net/mail"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Registry maps type names to checks for values whose runtime type carries no
// useful name, such as strings decoded from JSON that hold dates or UUIDs. Names
// are matched case-insensitively. A Registry is immutable once built.
type Registry struct {
	checks map[string]Check
}

// NewRegistry builds a registry from name/check pairs. Nil checks are skipped.
func NewRegistry(checks map[string]Check) *Registry {
	r := &Registry{checks: make(map[string]Check, len(checks))}
	for name, check := range checks {
		if name == "" || check == nil {
			continue
		}
		r.checks[foldName(name)] = check
	}
	return r
}

// With returns a copy of the registry with an extra check registered.
func (r *Registry) With(name string, check Check) *Registry {
	next := &Registry{checks: make(map[string]Check)}
	if r != nil {
		maps.Copy(next.checks, r.checks)
	}
	if name != "" && check != nil {
		next.checks[foldName(name)] = check
	}
	return next
}

// Lookup returns the check registered under name.
func (r *Registry) Lookup(name string) (Check, bool) {
	if r == nil || name == "" {
		return nil, false
	}
	return r.lookupFolded(foldName(name))
}

func (r *Registry) lookupFolded(name string) (Check, bool) {
	if r == nil {
		return nil, false
	}
	check, ok := r.checks[name]
	return check, ok
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.checks)
}

// WireTypes returns a registry for formats that travel as strings in JSON and
// YAML payloads: uuid, date (RFC 3339), email and url. The date check also
// accepts time.Time values.
func WireTypes() *Registry {
	return NewRegistry(map[string]Check{
		"uuid": func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
		"date": func(v any) bool {
			if isDate(v) {
				return true
			}
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, err := time.Parse(time.RFC3339, s)
			return err == nil
		},
		"email": func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			addr, err := mail.ParseAddress(s)
			return err == nil && addr.Address == s
		},
		"url": func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			u, err := url.Parse(s)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
	})
}
