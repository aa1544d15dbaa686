package colorfx

import "github.com/gogpu/colorfx/cache"

// Builder memoizes [Build] by parameter record and options. It is safe for
// concurrent use.
type Builder struct {
	filters *cache.Cache[buildKey, Filter]
}

type buildKey struct {
	params Params
	opts   options
}

// NewBuilder returns a Builder that keeps up to capacity filters. A
// non-positive capacity selects cache.DefaultCapacity.
func NewBuilder(capacity int) *Builder {
	return &Builder{filters: cache.New[buildKey, Filter](capacity)}
}

// Build returns Build(p, opts...), reusing a previous result for an equal
// record and option set. Records holding NaN never compare equal and are
// built without caching.
func (b *Builder) Build(p Params, opts ...Option) Filter {
	key := buildKey{params: p, opts: newOptions(opts)}
	if key != key {
		return build(key.params, key.opts)
	}
	return b.filters.GetOrCreate(key, func() Filter {
		return build(key.params, key.opts)
	})
}

// Stats returns the memoization counters.
func (b *Builder) Stats() cache.Stats {
	return b.filters.Stats()
}
