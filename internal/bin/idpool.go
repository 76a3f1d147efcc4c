package bin

import "go.uber.org/atomic"

// NoID is never handed out; it selects "unspecified" in id arguments.
const NoID = ^uint32(0)

// IDAllocator hands out process-unique ids. Grab must be safe for
// concurrent use.
type IDAllocator interface {
	Grab() (uint32, bool)
}

// IDPool allocates ids sequentially from [start, last].
type IDPool struct {
	next *atomic.Uint32
	last uint32
}

// NewIDPool returns a pool over [start, last]. last is capped below NoID.
func NewIDPool(start, last uint32) *IDPool {
	if last >= NoID {
		last = NoID - 1
	}
	return &IDPool{next: atomic.NewUint32(start), last: last}
}

func (p *IDPool) Grab() (uint32, bool) {
	for {
		id := p.next.Load()
		if id > p.last {
			return 0, false
		}
		if p.next.CompareAndSwap(id, id+1) {
			return id, true
		}
	}
}
