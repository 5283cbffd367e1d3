package scanner

import (
	"sort"
	"sync"
)

// ResultSet collects open ports reported by concurrent workers.
type ResultSet struct {
	mu    sync.Mutex
	ports []int
}

func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Add records an open port.
func (r *ResultSet) Add(port int) {
	r.mu.Lock()
	r.ports = append(r.ports, port)
	r.mu.Unlock()
}

// Sorted returns an ascending snapshot of the recorded ports.
func (r *ResultSet) Sorted() []int {
	r.mu.Lock()
	out := make([]int, len(r.ports))
	copy(out, r.ports)
	r.mu.Unlock()
	sort.Ints(out)
	return out
}
