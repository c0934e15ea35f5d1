package registry

import (
	"sync/atomic"
	"time"
)

// Status describes the last override document installed by the updater.
type Status struct {
	LastUpdated time.Time
	Entries     int
}

// Holder publishes the updater's Status to readers such as /readyz.
type Holder struct {
	value atomic.Pointer[Status]
}

func NewHolder() *Holder {
	h := &Holder{}
	h.value.Store(&Status{})
	return h
}

func (h *Holder) Get() *Status {
	return h.value.Load()
}

func (h *Holder) Set(s *Status) {
	h.value.Store(s)
}
