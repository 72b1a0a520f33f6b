package memspace

import "fmt"

// checkRegion validates an offset/length pair against a block of blockLen
// bytes. All region operations share this rule: the offset must land inside
// the block, the length must be positive, and the region must not extend
// past the end of the block.
func checkRegion(blockLen, offset, length int) error {
	if offset < 0 || offset >= blockLen {
		return fmt.Errorf("%w: offset %d, block length %d", ErrOffsetRange, offset, blockLen)
	}
	if length <= 0 {
		return fmt.Errorf("%w: %d", ErrLengthRange, length)
	}
	// compare against the remaining bytes rather than offset+length, which
	// can wrap for huge lengths
	if length > blockLen-offset {
		return fmt.Errorf(
			"%w: length %d at offset %d exceeds block length %d", ErrRegionRange, length, offset, blockLen)
	}
	return nil
}

// Read returns length bytes of the block at addr, starting at offset.
//
// The returned slice ALIASES the stored block: mutating it mutates the
// stored memory. Callers needing an independent snapshot must copy.
//
// A dead address yields (nil, nil) - not an error. Offsets or lengths
// violating the region rule fail with a wrapped range sentinel.
func (s *AddressSpace) Read(addr Addr, length, offset int) ([]byte, error) {
	b, ok := s.blocks[addr]
	if !ok {
		return nil, nil
	}
	if err := checkRegion(len(b), offset, length); err != nil {
		return nil, err
	}
	return b[offset : offset+length], nil
}

// ReadAll is Read for the entire block: the returned slice is the live
// internal buffer itself.
func (s *AddressSpace) ReadAll(addr Addr) ([]byte, error) {
	b, ok := s.blocks[addr]
	if !ok {
		return nil, nil
	}
	return b, nil
}

// Write overwrites bytes [offset, offset+len(data)) of the block at addr
// with data, in place. It returns (false, nil) if addr is not live. Empty
// data or a region violation fails with a range sentinel and leaves the
// block unchanged.
func (s *AddressSpace) Write(addr Addr, data []byte, offset int) (bool, error) {
	b, ok := s.blocks[addr]
	if !ok {
		return false, nil
	}
	if err := checkRegion(len(b), offset, len(data)); err != nil {
		return false, err
	}
	copy(b[offset:], data)
	return true, nil
}

// Copy copies length bytes from the block at src, starting at srcOffset,
// into the block at dst at dstOffset. Bounds are validated independently
// against each block. Overlapping same-block copies behave like memmove:
// the destination receives the bytes the source held before the call.
//
// Returns (false, nil) if either address is not live.
func (s *AddressSpace) Copy(src, dst Addr, length, srcOffset, dstOffset int) (bool, error) {
	sb, ok := s.blocks[src]
	if !ok {
		return false, nil
	}
	db, ok := s.blocks[dst]
	if !ok {
		return false, nil
	}
	if err := checkRegion(len(sb), srcOffset, length); err != nil {
		return false, fmt.Errorf("source block: %w", err)
	}
	if err := checkRegion(len(db), dstOffset, length); err != nil {
		return false, fmt.Errorf("destination block: %w", err)
	}
	copy(db[dstOffset:dstOffset+length], sb[srcOffset:srcOffset+length])
	return true, nil
}

// Fill sets every byte of the region [offset, offset+length) of the block at
// addr to value. Returns (false, nil) if addr is not live, range sentinels
// for region violations.
func (s *AddressSpace) Fill(addr Addr, value byte, length, offset int) (bool, error) {
	b, ok := s.blocks[addr]
	if !ok {
		return false, nil
	}
	if err := checkRegion(len(b), offset, length); err != nil {
		return false, err
	}
	region := b[offset : offset+length]
	for i := range region {
		region[i] = value
	}
	return true, nil
}

// Clear is Fill with a zero value.
func (s *AddressSpace) Clear(addr Addr, length, offset int) (bool, error) {
	return s.Fill(addr, 0, length, offset)
}
