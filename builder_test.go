package colorfx

import (
	"math"
	"sync"
	"testing"
)

func TestBuilderMatchesBuild(t *testing.T) {
	p := DefaultParams()
	p.Hue = 45
	p.Contrast = 1.3

	b := NewBuilder(8)
	got := b.Build(p, WithInverseStrategy(InverseExact))
	want := Build(p, WithInverseStrategy(InverseExact))
	if got != want {
		t.Errorf("Builder.Build() = %+v, want %+v", got, want)
	}
}

func TestBuilderMemoizes(t *testing.T) {
	b := NewBuilder(4)
	p := DefaultParams()

	b.Build(p)
	b.Build(p)
	p.Hue = 10
	b.Build(p)
	// Same record, different options.
	exact := b.Build(p, WithInverseStrategy(InverseExact))

	stats := b.Stats()
	if stats.Hits != 1 || stats.Misses != 3 {
		t.Errorf("hits=%d misses=%d, want 1 and 3", stats.Hits, stats.Misses)
	}
	if stats.Len != 3 {
		t.Errorf("Len = %d, want 3", stats.Len)
	}
	if exact.Strategy != InverseExact {
		t.Errorf("Strategy = %v, want exact", exact.Strategy)
	}
}

func TestBuilderConcurrent(t *testing.T) {
	b := NewBuilder(16)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := DefaultParams()
			p.Hue = float64(i % 8)
			f := b.Build(p)
			if f != Build(p) {
				t.Errorf("concurrent Build(%v) mismatch", p.Hue)
			}
		}()
	}
	wg.Wait()
}

func TestBuilderSkipsNaNRecords(t *testing.T) {
	b := NewBuilder(4)
	p := DefaultParams()
	p.Hue = math.NaN()

	for range 100 {
		b.Build(p)
	}

	stats := b.Stats()
	if stats.Len != 0 {
		t.Errorf("Len = %d, want 0 for uncacheable records", stats.Len)
	}
	if stats.Misses != 0 || stats.Evictions != 0 {
		t.Errorf("misses=%d evictions=%d, want cache untouched", stats.Misses, stats.Evictions)
	}

	// Cacheable records still go through the cache afterwards.
	b.Build(DefaultParams())
	b.Build(DefaultParams())
	if stats := b.Stats(); stats.Len != 1 || stats.Hits != 1 {
		t.Errorf("Len=%d Hits=%d, want 1 and 1", stats.Len, stats.Hits)
	}
}
