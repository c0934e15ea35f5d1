package domain

import (
	"sync"

	"github.com/apervushin/commons-validator/pkg/tld"
)

// One shared instance per allowLocal value, built on first use.
var instances [2]struct {
	once sync.Once
	v    *Validator
}

func instanceIndex(allowLocal bool) int {
	if allowLocal {
		return 1
	}
	return 0
}

// GetInstance returns the process-wide Validator for allowLocal. Every call
// with the same flag returns the same instance, so overrides installed on it
// are seen by all of its callers.
func GetInstance(allowLocal bool) *Validator {
	slot := &instances[instanceIndex(allowLocal)]
	slot.once.Do(func() {
		slot.v = &Validator{
			allowLocal: allowLocal,
			tlds:       tld.NewRegistry(),
		}
	})
	return slot.v
}

// Default returns the shared instance that rejects local names.
func Default() *Validator {
	return GetInstance(false)
}
