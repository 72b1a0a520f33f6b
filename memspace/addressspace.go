package memspace

import (
	"fmt"
	"math"
)

// MaxSpaceBytes is the largest capacity an AddressSpace may be constructed
// with. It is the host's maximum safely representable integer, floor divided
// by 8, so that byte occupancy arithmetic can never overflow a signed total.
const MaxSpaceBytes = uint64(math.MaxInt64-1) / 8

// Addr is the opaque key identifying one allocated block within an
// AddressSpace. It is stable for the life of the allocation and carries no
// meaning outside the space that issued it.
type Addr uint64

// AddressSpace is a simulated flat memory space: a bounded set of fixed
// length byte blocks keyed by integer address, with an optional symbolic
// name bound to an address.
//
// The zero value is not usable, construct with New.
type AddressSpace struct {
	capacity uint64
	blocks   map[Addr][]byte
	names    map[string]Addr
}

// New creates an empty AddressSpace. The capacity defaults to MaxSpaceBytes
// and can be lowered with WithCapacity. A capacity above MaxSpaceBytes is a
// contract violation and fails with ErrCapacityRange.
func New(opts ...Option) (*AddressSpace, error) {
	options := &SpaceOptions{Capacity: MaxSpaceBytes}
	for _, opt := range opts {
		opt(options)
	}
	if options.Capacity > MaxSpaceBytes {
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityRange, options.Capacity, MaxSpaceBytes)
	}
	return &AddressSpace{
		capacity: options.Capacity,
		blocks:   map[Addr][]byte{},
		names:    map[string]Addr{},
	}, nil
}

// Capacity returns the maximum total bytes this space may hold across all
// live blocks. Fixed at construction.
func (s *AddressSpace) Capacity() uint64 {
	return s.capacity
}

// Size returns the number of live blocks.
func (s *AddressSpace) Size() int {
	return len(s.blocks)
}

// ByteLength returns the current occupancy: the sum of the lengths of all
// live blocks.
func (s *AddressSpace) ByteLength() uint64 {
	var occupied uint64
	for _, b := range s.blocks {
		occupied += uint64(len(b))
	}
	return occupied
}

// Has reports whether addr is currently live. No side effects.
func (s *AddressSpace) Has(addr Addr) bool {
	_, ok := s.blocks[addr]
	return ok
}

// Erase unconditionally destroys every block and every name binding,
// resetting the space to empty. It always succeeds.
func (s *AddressSpace) Erase() {
	s.blocks = map[Addr][]byte{}
	s.names = map[string]Addr{}
}
