package registry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/apervushin/commons-validator/pkg/domain"
	"github.com/apervushin/commons-validator/pkg/tld"
)

type fakeSource struct {
	o     *Overrides
	err   error
	calls int
}

func (f *fakeSource) FetchOverrides(ctx context.Context) (*Overrides, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.o, nil
}

func newTestValidator(t *testing.T) *domain.Validator {
	t.Helper()
	v, err := domain.New(false)
	if err != nil {
		t.Fatalf("domain.New: %v", err)
	}
	return v
}

func TestUpdateOnce_Success(t *testing.T) {
	v := newTestValidator(t)
	holder := NewHolder()

	src := &fakeSource{
		o: &Overrides{
			CountryCode: &tld.Override{Plus: []string{"zz"}, Minus: []string{"uk"}},
		},
	}

	if err := updateOnce(context.Background(), src, v, holder); err != nil {
		t.Fatalf("updateOnce error: %v", err)
	}

	if !v.IsValidCountryCodeTld(".zz") || v.IsValidCountryCodeTld(".uk") {
		t.Fatalf("overrides not installed: plus=%v minus=%v",
			v.TldEntries(tld.CountryCodePlus), v.TldEntries(tld.CountryCodeMinus))
	}

	st := holder.Get()
	if st.LastUpdated.IsZero() || st.Entries != 2 {
		t.Fatalf("status = %+v, want LastUpdated set and Entries=2", st)
	}
}

func TestUpdateOnce_FetchErrorKeepsPrevious(t *testing.T) {
	v := newTestValidator(t)
	if err := v.OverrideTlds(tld.Generic, []string{"kept"}, nil); err != nil {
		t.Fatalf("OverrideTlds: %v", err)
	}
	holder := NewHolder()

	src := &fakeSource{err: errors.New("boom")}
	if err := updateOnce(context.Background(), src, v, holder); err == nil {
		t.Fatal("expected error")
	}

	if !v.IsValidGenericTld(".kept") {
		t.Fatal("previous overrides were dropped")
	}
	if !holder.Get().LastUpdated.IsZero() {
		t.Fatal("status must not change on failure")
	}
}

func TestStart_StopsOnCancel(t *testing.T) {
	v := newTestValidator(t)
	holder := NewHolder()
	src := &fakeSource{o: &Overrides{Local: &tld.Override{Plus: []string{"lan"}}}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Start(ctx, Config{Interval: time.Hour}, src, v, holder)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for holder.Get().LastUpdated.IsZero() {
		if time.Now().After(deadline) {
			t.Fatal("initial load did not happen")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Start() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}

	if !v.IsValidLocalTld(".lan") {
		t.Fatal("initial overrides not installed")
	}
}

// flakySource fails its first n fetches.
type flakySource struct {
	n     int32
	calls atomic.Int32
	o     *Overrides
}

func (f *flakySource) FetchOverrides(ctx context.Context) (*Overrides, error) {
	if f.calls.Add(1) <= f.n {
		return nil, errors.New("unavailable")
	}
	return f.o, nil
}

func TestStart_RetriesWithBackoff(t *testing.T) {
	v := newTestValidator(t)
	holder := NewHolder()
	src := &flakySource{n: 2, o: &Overrides{Generic: &tld.Override{Plus: []string{"corp"}}}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = Start(ctx, Config{Interval: time.Hour, InitialBackoff: 10 * time.Millisecond, MaxBackoff: 50 * time.Millisecond}, src, v, holder)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for holder.Get().LastUpdated.IsZero() {
		if time.Now().After(deadline) {
			t.Fatalf("no successful load after %d attempts", src.calls.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := src.calls.Load(); got != 3 {
		t.Fatalf("calls = %d, want 3", got)
	}
	if !v.IsValidGenericTld(".corp") {
		t.Fatal("overrides not installed after recovery")
	}
}

func TestStart_DisabledWithoutInterval(t *testing.T) {
	src := &fakeSource{}
	if err := Start(context.Background(), Config{}, src, newTestValidator(t), NewHolder()); err != nil {
		t.Fatalf("Start() = %v, want nil", err)
	}
	if src.calls != 0 {
		t.Fatalf("source called %d times, want 0", src.calls)
	}
}

func TestCalcBackoff(t *testing.T) {
	initial := time.Second
	max := 10 * time.Second

	tests := []struct {
		failures int
		base     time.Duration
	}{
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{10, max},
	}

	for _, tt := range tests {
		got := calcBackoff(initial, max, tt.failures)
		lo := time.Duration(0.8 * float64(tt.base))
		hi := time.Duration(1.2 * float64(tt.base))
		if got < lo || got > hi {
			t.Errorf("calcBackoff(failures=%d) = %s, want within [%s, %s]", tt.failures, got, lo, hi)
		}
	}
}
