package tld

import (
	"fmt"
	"strings"
)

// Kind is a top-level domain category.
type Kind int

const (
	Infrastructure Kind = iota
	Generic
	CountryCode
	Local

	numKinds
)

var kindNames = [numKinds]string{
	Infrastructure: "infrastructure",
	Generic:        "generic",
	CountryCode:    "country-code",
	Local:          "local",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Overridable reports whether plus/minus lists can be installed for k.
func (k Kind) Overridable() bool {
	return k == Generic || k == CountryCode || k == Local
}

// ParseKind returns the kind named s ("generic", "country-code", ...).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ListType selects one concrete list: a built-in table (RO) or one side of
// an override pair.
type ListType int

const (
	InfrastructureRO ListType = iota
	GenericRO
	GenericPlus
	GenericMinus
	CountryCodeRO
	CountryCodePlus
	CountryCodeMinus
	LocalRO
	LocalPlus
	LocalMinus

	numListTypes
)

type side int

const (
	sideBuiltin side = iota
	sidePlus
	sideMinus
)

var listTypes = [numListTypes]struct {
	kind Kind
	side side
	name string
}{
	InfrastructureRO: {Infrastructure, sideBuiltin, "infrastructure-ro"},
	GenericRO:        {Generic, sideBuiltin, "generic-ro"},
	GenericPlus:      {Generic, sidePlus, "generic-plus"},
	GenericMinus:     {Generic, sideMinus, "generic-minus"},
	CountryCodeRO:    {CountryCode, sideBuiltin, "country-code-ro"},
	CountryCodePlus:  {CountryCode, sidePlus, "country-code-plus"},
	CountryCodeMinus: {CountryCode, sideMinus, "country-code-minus"},
	LocalRO:          {Local, sideBuiltin, "local-ro"},
	LocalPlus:        {Local, sidePlus, "local-plus"},
	LocalMinus:       {Local, sideMinus, "local-minus"},
}

func (lt ListType) valid() bool {
	return lt >= 0 && lt < numListTypes
}

func (lt ListType) String() string {
	if !lt.valid() {
		return fmt.Sprintf("ListType(%d)", int(lt))
	}
	return listTypes[lt].name
}

// Kind returns the category the list belongs to.
func (lt ListType) Kind() Kind {
	if !lt.valid() {
		return -1
	}
	return listTypes[lt].kind
}

// ReadOnly reports whether lt names a built-in table.
func (lt ListType) ReadOnly() bool {
	return lt.valid() && listTypes[lt].side == sideBuiltin
}

// ParseListType returns the list named s ("generic-ro", "local-plus", ...).
func ParseListType(s string) (ListType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for lt, t := range listTypes {
		if t.name == s {
			return ListType(lt), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown list %q", ErrUnknownKind, s)
}

// ListTypes returns every list type in declaration order.
func ListTypes() []ListType {
	out := make([]ListType, numListTypes)
	for i := range out {
		out[i] = ListType(i)
	}
	return out
}
