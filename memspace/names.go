package memspace

import (
	"fmt"
	"sort"
)

// SetVar binds name to addr. A name already bound fails with ErrNameBound.
//
// The address is not required to be live: binding a freed or never allocated
// address is permitted, and keeping such a binding consistent is the
// caller's responsibility. Nothing prevents several names binding the same
// address, but see Free for the cleanup consequences.
func (s *AddressSpace) SetVar(name string, addr Addr) error {
	if _, ok := s.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrNameBound, name)
	}
	s.names[name] = addr
	return nil
}

// HasVar reports whether name is currently bound.
func (s *AddressSpace) HasVar(name string) bool {
	_, ok := s.names[name]
	return ok
}

// VarAddress returns the address bound to name, and whether it was bound.
func (s *AddressSpace) VarAddress(name string) (Addr, bool) {
	addr, ok := s.names[name]
	return addr, ok
}

// Names returns the currently bound variable names, sorted.
func (s *AddressSpace) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FreeVar resolves name and delegates to Free. It returns false if name is
// unbound.
//
// Note that Free unbinds at most one name pointing at the freed address, and
// the unordered scan may pick a *different* name than the one given here
// when several are bound to the same address.
func (s *AddressSpace) FreeVar(name string) bool {
	addr, ok := s.names[name]
	if !ok {
		return false
	}
	return s.Free(addr)
}

// The named region operations resolve their name arguments and delegate to
// the address keyed form. An unbound name yields the dead address sentinel
// (nil or false, no error) without touching memory.

func (s *AddressSpace) ReadVar(name string, length, offset int) ([]byte, error) {
	addr, ok := s.names[name]
	if !ok {
		return nil, nil
	}
	return s.Read(addr, length, offset)
}

func (s *AddressSpace) ReadVarAll(name string) ([]byte, error) {
	addr, ok := s.names[name]
	if !ok {
		return nil, nil
	}
	return s.ReadAll(addr)
}

func (s *AddressSpace) WriteVar(name string, data []byte, offset int) (bool, error) {
	addr, ok := s.names[name]
	if !ok {
		return false, nil
	}
	return s.Write(addr, data, offset)
}

func (s *AddressSpace) CopyVar(srcName, dstName string, length, srcOffset, dstOffset int) (bool, error) {
	src, ok := s.names[srcName]
	if !ok {
		return false, nil
	}
	dst, ok := s.names[dstName]
	if !ok {
		return false, nil
	}
	return s.Copy(src, dst, length, srcOffset, dstOffset)
}

func (s *AddressSpace) FillVar(name string, value byte, length, offset int) (bool, error) {
	addr, ok := s.names[name]
	if !ok {
		return false, nil
	}
	return s.Fill(addr, value, length, offset)
}

func (s *AddressSpace) ClearVar(name string, length, offset int) (bool, error) {
	addr, ok := s.names[name]
	if !ok {
		return false, nil
	}
	return s.Clear(addr, length, offset)
}
