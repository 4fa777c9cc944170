package client

import "sync/atomic"

// Fence guards a view's shared state against stale responses on rapid
// navigation. Each load takes a generation with Next; a response is
// applied only when its generation is still the latest issued, so the
// last navigation wins regardless of response ordering.
type Fence struct {
	n atomic.Int64
}

// Next invalidates all outstanding generations and returns a new live
// one.
func (f *Fence) Next() Gen {
	return Gen{fence: f, id: f.n.Add(1)}
}

// Gen is one issued generation.
type Gen struct {
	fence *Fence
	id    int64
}

// Live reports whether no newer generation has been issued since this
// one. Stale results must be dropped, not merged.
func (g Gen) Live() bool {
	return g.fence != nil && g.fence.n.Load() == g.id
}
