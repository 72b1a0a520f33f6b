package memspace

import "encoding/binary"

// Fixed width scalar writers. Each encodes its value little endian and
// delegates to Write, so the Write result semantics apply unchanged: a dead
// address is (false, nil) and a region violation is a range error. The
// signed writers encode two's complement, which for non negative values is
// byte identical to the unsigned encoding of the same magnitude.

func (s *AddressSpace) WriteUint8(addr Addr, v uint8, offset int) (bool, error) {
	return s.Write(addr, []byte{v}, offset)
}

func (s *AddressSpace) WriteUint16(addr Addr, v uint16, offset int) (bool, error) {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return s.Write(addr, b, offset)
}

func (s *AddressSpace) WriteUint32(addr Addr, v uint32, offset int) (bool, error) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return s.Write(addr, b, offset)
}

func (s *AddressSpace) WriteUint64(addr Addr, v uint64, offset int) (bool, error) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return s.Write(addr, b, offset)
}

func (s *AddressSpace) WriteInt8(addr Addr, v int8, offset int) (bool, error) {
	return s.WriteUint8(addr, uint8(v), offset)
}

func (s *AddressSpace) WriteInt16(addr Addr, v int16, offset int) (bool, error) {
	return s.WriteUint16(addr, uint16(v), offset)
}

func (s *AddressSpace) WriteInt32(addr Addr, v int32, offset int) (bool, error) {
	return s.WriteUint32(addr, uint32(v), offset)
}

func (s *AddressSpace) WriteInt64(addr Addr, v int64, offset int) (bool, error) {
	return s.WriteUint64(addr, uint64(v), offset)
}

// ReadUint32 decodes the 4 bytes at offset of the block at addr as a little
// endian unsigned 32 bit integer.
//
// When the underlying read produces no data - the address is dead, or the
// region is out of range - the result is 0. A caller cannot distinguish a
// stored zero from a failed read through this call alone; use Read directly
// where the distinction matters.
func (s *AddressSpace) ReadUint32(addr Addr, offset int) uint32 {
	b, err := s.Read(addr, 4, offset)
	if err != nil || b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}
