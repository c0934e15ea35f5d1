// Package tld classifies top-level domains into infrastructure, generic,
// country-code and local categories.
//
// The built-in tables are compiled in and never change at runtime. Each
// Registry carries its own override pairs for the generic, country-code and
// local categories; a label is effectively valid for such a category when it
// is in the built-in table and not in the minus list, or when it is in the
// plus list.
package tld

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

var (
	ErrUnknownKind  = errors.New("tld: unknown category")
	ErrReadOnly     = errors.New("tld: category is read-only")
	ErrInvalidEntry = errors.New("tld: invalid entry")
)

// Registry answers TLD membership queries. The zero value is ready to use
// and has no overrides installed.
type Registry struct {
	overrides [numKinds]holder
}

func NewRegistry() *Registry {
	return &Registry{}
}

func builtin(k Kind) []string {
	switch k {
	case Infrastructure:
		return infrastructureTLDs
	case Generic:
		return genericTLDs
	case CountryCode:
		return countryCodeTLDs
	case Local:
		return localTLDs
	default:
		return nil
	}
}

// Builtin returns a copy of the built-in table for k, or nil for an unknown
// kind.
func Builtin(k Kind) []string {
	return slices.Clone(builtin(k))
}

// key lowercases tld and strips one leading dot.
func key(tld string) string {
	return strings.TrimPrefix(strings.ToLower(tld), ".")
}

func contains(sorted []string, k string) bool {
	i := sort.SearchStrings(sorted, k)
	return i < len(sorted) && sorted[i] == k
}

func (r *Registry) lookup(k Kind, tld string) bool {
	label := key(tld)
	if label == "" {
		return false
	}

	in := contains(builtin(k), label)
	if !k.Overridable() {
		return in
	}

	o := r.overrides[k].Get()
	return (in && !contains(o.Minus, label)) || contains(o.Plus, label)
}

// IsInfrastructure reports whether tld (".arpa" or "arpa") is an
// infrastructure TLD.
func (r *Registry) IsInfrastructure(tld string) bool {
	return r.lookup(Infrastructure, tld)
}

// IsGeneric reports whether tld is an effective generic TLD.
func (r *Registry) IsGeneric(tld string) bool {
	return r.lookup(Generic, tld)
}

// IsCountryCode reports whether tld is an effective country-code TLD.
func (r *Registry) IsCountryCode(tld string) bool {
	return r.lookup(CountryCode, tld)
}

// IsLocal reports whether tld is an effective local TLD.
func (r *Registry) IsLocal(tld string) bool {
	return r.lookup(Local, tld)
}

// Override replaces the override pair of kind k. Entries are matched
// case-insensitively and may carry a leading dot. The new pair is visible to
// every lookup that starts after Override returns.
func (r *Registry) Override(k Kind, plus, minus []string) error {
	if k < 0 || k >= numKinds {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if !k.Overridable() {
		return fmt.Errorf("%w: %s", ErrReadOnly, k)
	}

	p, err := normalizeEntries(plus)
	if err != nil {
		return fmt.Errorf("%s plus: %w", k, err)
	}
	m, err := normalizeEntries(minus)
	if err != nil {
		return fmt.Errorf("%s minus: %w", k, err)
	}

	r.overrides[k].Set(&Override{Plus: p, Minus: m})
	return nil
}

// Overrides returns a copy of the override pair currently installed for k.
func (r *Registry) Overrides(k Kind) Override {
	if !k.Overridable() {
		return Override{}
	}
	return r.overrides[k].Get().clone()
}

// Entries returns a copy of the list selected by lt: the built-in table for
// the RO types, the installed plus or minus list otherwise.
func (r *Registry) Entries(lt ListType) []string {
	if !lt.valid() {
		return nil
	}

	t := listTypes[lt]
	switch t.side {
	case sidePlus:
		return slices.Clone(r.overrides[t.kind].Get().Plus)
	case sideMinus:
		return slices.Clone(r.overrides[t.kind].Get().Minus)
	default:
		return Builtin(t.kind)
	}
}

// Effective materializes the effective set of kind k, sorted ascending.
func (r *Registry) Effective(k Kind) []string {
	b := builtin(k)
	if !k.Overridable() {
		return slices.Clone(b)
	}

	o := r.overrides[k].Get()
	out := make([]string, 0, len(b)+len(o.Plus))
	for _, e := range b {
		if !contains(o.Minus, e) {
			out = append(out, e)
		}
	}
	out = append(out, o.Plus...)
	sort.Strings(out)
	return slices.Compact(out)
}

// normalizeEntries lowercases, validates, sorts and deduplicates entries.
func normalizeEntries(entries []string) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		k := key(e)
		if !IsTopLabel(k) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEntry, e)
		}
		out = append(out, k)
	}

	sort.Strings(out)
	return slices.Compact(out), nil
}
