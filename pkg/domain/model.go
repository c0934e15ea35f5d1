package domain

import (
	"github.com/apervushin/commons-validator/pkg/tld"
)

// Validator checks domain names against the syntax rules and the TLD
// registry. It is safe for concurrent use. Instances differ only in whether
// local names are allowed and in the override lists installed on them.
type Validator struct {
	allowLocal bool
	tlds       *tld.Registry
}

// Option configures a Validator built with New.
type Option func(*Validator) error

// WithOverride installs an override pair for kind on the new Validator.
func WithOverride(kind tld.Kind, plus, minus []string) Option {
	return func(v *Validator) error {
		return v.OverrideTlds(kind, plus, minus)
	}
}

// New returns an independent Validator. Overrides installed on it do not
// affect the shared instances returned by GetInstance.
func New(allowLocal bool, opts ...Option) (*Validator, error) {
	v := &Validator{
		allowLocal: allowLocal,
		tlds:       tld.NewRegistry(),
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// AllowLocal reports whether local names such as "localhost" are accepted.
func (v *Validator) AllowLocal() bool {
	return v.allowLocal
}
