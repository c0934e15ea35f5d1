package tld

import (
	"slices"
	"sync/atomic"
)

// Override is a pair of exception lists for one category. Plus entries are
// valid even when missing from the built-in table; Minus entries are invalid
// even when present in it.
type Override struct {
	Plus  []string `json:"plus,omitempty"`
	Minus []string `json:"minus,omitempty"`
}

func (o Override) clone() Override {
	return Override{Plus: slices.Clone(o.Plus), Minus: slices.Clone(o.Minus)}
}

var emptyOverride = &Override{}

// holder publishes one category's override pair. Writers store a fresh,
// never-mutated pair, so readers always see both lists from the same call.
type holder struct {
	value atomic.Pointer[Override]
}

func (h *holder) Get() *Override {
	if o := h.value.Load(); o != nil {
		return o
	}
	return emptyOverride
}

func (h *holder) Set(o *Override) {
	h.value.Store(o)
}
