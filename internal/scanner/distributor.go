package scanner

import (
	"sync"

	"port-scanner/internal/models"
)

// Distributor hands out the ports of a PortSet one at a time, in order,
// to any number of concurrent workers. Each port is claimed exactly once.
type Distributor struct {
	mu    sync.Mutex
	ports models.PortSet
	next  int
}

// NewDistributor creates a Distributor positioned at the first port.
func NewDistributor(ports models.PortSet) *Distributor {
	return &Distributor{ports: ports}
}

// Claim returns the next unclaimed port. ok is false once every port has
// been handed out, and stays false for all later calls.
func (d *Distributor) Claim() (port int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.next >= len(d.ports) {
		return 0, false
	}
	port = d.ports[d.next]
	d.next++
	return port, true
}

// Len returns the size of the underlying PortSet.
func (d *Distributor) Len() int {
	return len(d.ports)
}
