package syncclient

import "sync/atomic"

// Reachability is the externally reported connectivity signal. The
// engine never probes the network itself; door devices (or an ops
// endpoint) report state changes here.
type Reachability struct {
	online atomic.Bool
}

func NewReachability(initiallyOnline bool) *Reachability {
	r := &Reachability{}
	r.online.Store(initiallyOnline)
	return r
}

func (r *Reachability) Online() bool {
	return r.online.Load()
}

func (r *Reachability) SetOnline(online bool) {
	r.online.Store(online)
}
