package status

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers at construction; hot paths write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
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

// Snapshot returns every metric rendered as text, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = fmt.Sprint(v.Load()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = fmt.Sprint(v.Load()) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = fmt.Sprintf("%.3f", v.Get()) })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// WriteTo dumps all metrics, one "name=value" per line, grouped by type in sorted key order
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var werr error
	emit := func(k, v string) {
		if werr != nil {
			return
		}
		n, err := fmt.Fprintf(w, "%s=%s\n", k, v)
		total += int64(n)
		werr = err
	}

	r.Bools.Range(func(k string, v *atomic.Bool) { emit(k, fmt.Sprint(v.Load())) })
	r.Ints.Range(func(k string, v *atomic.Int64) { emit(k, fmt.Sprint(v.Load())) })
	r.Floats.Range(func(k string, v *AtomicFloat) { emit(k, fmt.Sprintf("%.3f", v.Get())) })
	r.Strings.Range(func(k string, v *AtomicString) { emit(k, v.Load()) })
	return total, werr
}
