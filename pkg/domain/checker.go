// Package domain validates Internet domain names without DNS lookups.
package domain

import (
	"strings"

	"github.com/apervushin/commons-validator/pkg/tld"
)

// IsValid reports whether s is a well-formed domain name whose rightmost
// label is a currently valid TLD. Unicode names are converted to their ASCII
// form first. A name without dots is accepted only when local names are
// allowed. It never panics; empty and malformed input yield false.
func (v *Validator) IsValid(s string) bool {
	if s == "" {
		return false
	}

	labels, ok := splitLabels(UnicodeToASCII(s))
	if !ok {
		return false
	}
	if len(labels) == 1 {
		return v.allowLocal
	}
	return v.IsValidTld(labels[len(labels)-1])
}

// IsValidDomainSyntax reports whether s has the shape of a domain or host
// name, without checking its TLD.
func (v *Validator) IsValidDomainSyntax(s string) bool {
	if s == "" {
		return false
	}
	return checkDomainSyntax(UnicodeToASCII(s))
}

// IsValidTld reports whether tld, with or without its leading dot, is an
// infrastructure, generic or country-code TLD, or a local TLD when local
// names are allowed.
func (v *Validator) IsValidTld(tld string) bool {
	key := tldKey(tld)
	if key == "" {
		return false
	}
	if v.allowLocal && v.tlds.IsLocal(key) {
		return true
	}
	return v.tlds.IsInfrastructure(key) || v.tlds.IsGeneric(key) || v.tlds.IsCountryCode(key)
}

func (v *Validator) IsValidInfrastructureTld(tld string) bool {
	return v.tlds.IsInfrastructure(tldKey(tld))
}

func (v *Validator) IsValidGenericTld(tld string) bool {
	return v.tlds.IsGeneric(tldKey(tld))
}

func (v *Validator) IsValidCountryCodeTld(tld string) bool {
	return v.tlds.IsCountryCode(tldKey(tld))
}

// IsValidLocalTld reports membership in the local table regardless of
// whether this instance allows local names.
func (v *Validator) IsValidLocalTld(tld string) bool {
	return v.tlds.IsLocal(tldKey(tld))
}

// OverrideTlds replaces the plus and minus lists of kind for this instance.
// Unicode entries are stored in their ASCII form. It fails for the
// read-only infrastructure kind and for malformed entries, leaving the
// previous lists installed.
func (v *Validator) OverrideTlds(kind tld.Kind, plus, minus []string) error {
	return v.tlds.Override(kind, toASCIIAll(plus), toASCIIAll(minus))
}

// TldEntries returns a copy of one built-in table or installed override list.
func (v *Validator) TldEntries(lt tld.ListType) []string {
	return v.tlds.Entries(lt)
}

// EffectiveTlds returns the sorted effective set of kind for this instance.
func (v *Validator) EffectiveTlds(kind tld.Kind) []string {
	return v.tlds.Effective(kind)
}

// tldKey normalizes a TLD query to a lowercase ASCII label. Anything that is
// not a single label yields "".
func tldKey(s string) string {
	s = strings.TrimPrefix(separators.Replace(s), ".")
	s = strings.ToLower(UnicodeToASCII(s))
	if s == "" || strings.Contains(s, ".") {
		return ""
	}
	return s
}

func toASCIIAll(entries []string) []string {
	if entries == nil {
		return nil
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = UnicodeToASCII(strings.TrimPrefix(e, "."))
	}
	return out
}
