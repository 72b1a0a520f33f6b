package memspace

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Alloc reserves a fresh address and associates it with a zero filled block
// of size bytes.
//
// The address is chosen deterministically from the live state: the candidate
// starts at the current live block count and is probed upward until an
// unused address is found. Note in particular that addresses of freed blocks
// can be re-issued by later allocations.
//
// A size of zero or less fails with ErrSizeInvalid. An allocation that would
// push the occupancy past the space capacity fails with ErrCapacityExceeded.
func (s *AddressSpace) Alloc(size int) (Addr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrSizeInvalid, size)
	}
	occupied := s.ByteLength()
	if occupied+uint64(size) > s.capacity {
		return 0, fmt.Errorf(
			"%w: %d occupied + %d requested > %d", ErrCapacityExceeded, occupied, size, s.capacity)
	}

	addr := Addr(len(s.blocks))
	for s.Has(addr) {
		addr++
	}
	s.blocks[addr] = make([]byte, size)

	// this would produce way too much logging in services, but it is very handy for integration tests
	if false {
		logger.Sugar.Debugf("alloc: addr=%d, size=%d, occupied=%d", addr, size, occupied+uint64(size))
	}
	return addr, nil
}

// Free releases the block at addr. It returns false, without error, if addr
// is not live - freeing twice is a normal outcome.
//
// If one or more names are bound to addr, at most one of them (the first
// found by an unordered scan) is unbound along with the block. Any further
// names bound to the same address are left dangling; see FreeVar.
func (s *AddressSpace) Free(addr Addr) bool {
	if _, ok := s.blocks[addr]; !ok {
		return false
	}
	delete(s.blocks, addr)
	for name, bound := range s.names {
		if bound == addr {
			delete(s.names, name)
			break
		}
	}
	return true
}
