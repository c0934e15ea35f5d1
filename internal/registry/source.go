package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/apervushin/commons-validator/pkg/domain"
	"github.com/apervushin/commons-validator/pkg/tld"
)

// Overrides is the override feed document. A nil category is left as it is
// on the validator; a present one replaces the installed pair.
type Overrides struct {
	Generic     *tld.Override `json:"generic,omitempty"`
	CountryCode *tld.Override `json:"country-code,omitempty"`
	Local       *tld.Override `json:"local,omitempty"`
}

type categoryOverride struct {
	kind tld.Kind
	o    *tld.Override
}

func (o *Overrides) categories() []categoryOverride {
	all := []categoryOverride{
		{tld.Generic, o.Generic},
		{tld.CountryCode, o.CountryCode},
		{tld.Local, o.Local},
	}
	out := all[:0]
	for _, c := range all {
		if c.o != nil {
			out = append(out, c)
		}
	}
	return out
}

// Entries counts plus and minus entries over all present categories.
func (o *Overrides) Entries() int {
	n := 0
	for _, c := range o.categories() {
		n += len(c.o.Plus) + len(c.o.Minus)
	}
	return n
}

// Fetcher loads an override document.
type Fetcher interface {
	FetchOverrides(ctx context.Context) (*Overrides, error)
}

// NewSource returns a Fetcher for location: an http(s) URL, a file:// URL or a
// plain path.
func NewSource(location string) (Fetcher, error) {
	switch {
	case location == "":
		return nil, fmt.Errorf("empty overrides source")
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewClient(location), nil
	default:
		return NewFileSource(strings.TrimPrefix(location, "file://")), nil
	}
}

func decodeOverrides(r io.Reader) (*Overrides, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var o Overrides
	if err := dec.Decode(&o); err != nil {
		return nil, fmt.Errorf("decode overrides: %w", err)
	}
	return &o, nil
}

// Apply installs every category present in o on v. The whole document is
// checked against a scratch validator first, so a bad entry in one category
// leaves all of v's lists untouched.
func Apply(v *domain.Validator, o *Overrides) error {
	scratch, err := domain.New(v.AllowLocal())
	if err != nil {
		return err
	}

	cats := o.categories()
	for _, c := range cats {
		if err := scratch.OverrideTlds(c.kind, c.o.Plus, c.o.Minus); err != nil {
			return fmt.Errorf("invalid overrides: %w", err)
		}
	}

	for _, c := range cats {
		if err := v.OverrideTlds(c.kind, c.o.Plus, c.o.Minus); err != nil {
			return fmt.Errorf("install %s overrides: %w", c.kind, err)
		}
	}
	return nil
}
