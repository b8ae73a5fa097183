package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers at construction; per-frame code writes the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Each visits every metric formatted as text, grouped by type then key order
func (r *Registry) Each(fn func(key, value string)) {
	r.Strings.Range(func(k string, v *AtomicString) { fn(k, v.Load()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { fn(k, strconv.FormatInt(v.Load(), 10)) })
	r.Floats.Range(func(k string, v *AtomicFloat) { fn(k, strconv.FormatFloat(v.Load(), 'f', 2, 64)) })
	r.Bools.Range(func(k string, v *atomic.Bool) { fn(k, strconv.FormatBool(v.Load())) })
}

// KeyVals flattens all metrics into alternating key/value pairs for structured logging
func (r *Registry) KeyVals() []any {
	kv := make([]any, 0, 2*r.TotalCount())
	r.Each(func(k, v string) {
		kv = append(kv, k, v)
	})
	return kv
}
