package memspace

import (
	"errors"
	"fmt"
	"sort"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

var (
	ErrSnapshotInvalid = errors.New("the snapshot data is inconsistent")
)

// SnapshotBlock carries one live block: its address and an owned copy of its
// bytes.
type SnapshotBlock struct {
	Addr uint64 `cbor:"1,keyasint"`
	Data []byte `cbor:"2,keyasint"`
}

// SnapshotState is the serialised form of a whole AddressSpace. Blocks are
// address ordered so that encoding the same space twice yields identical
// bytes.
type SnapshotState struct {
	Capacity uint64            `cbor:"1,keyasint"`
	Blocks   []SnapshotBlock   `cbor:"2,keyasint"`
	Names    map[string]uint64 `cbor:"3,keyasint,omitempty"`
}

// NewSnapshotCodec returns the CBOR codec configuration used for snapshot
// interchange.
func NewSnapshotCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(), // unsigned int decodes to uint64
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

// Snapshot serialises the space - capacity, blocks and name bindings - for
// later restoration with RestoreSnapshot. The snapshot owns its bytes, it
// does not alias live blocks.
func (s *AddressSpace) Snapshot(codec dtcbor.CBORCodec) ([]byte, error) {
	state := SnapshotState{
		Capacity: s.capacity,
		Blocks:   make([]SnapshotBlock, 0, len(s.blocks)),
	}
	for addr, b := range s.blocks {
		data := make([]byte, len(b))
		copy(data, b)
		state.Blocks = append(state.Blocks, SnapshotBlock{Addr: uint64(addr), Data: data})
	}
	sort.Slice(state.Blocks, func(i, j int) bool {
		return state.Blocks[i].Addr < state.Blocks[j].Addr
	})
	if len(s.names) > 0 {
		state.Names = make(map[string]uint64, len(s.names))
		for name, addr := range s.names {
			state.Names[name] = uint64(addr)
		}
	}
	return codec.MarshalCBOR(state)
}

// RestoreSnapshot rebuilds an AddressSpace from data produced by Snapshot.
//
// The recorded state is held to the same invariants a live space enforces:
// the capacity must not exceed MaxSpaceBytes, blocks must be non empty and
// uniquely addressed, and the total occupancy must fit the recorded
// capacity. Violations fail with ErrSnapshotInvalid (or the matching
// capacity sentinel) rather than producing a space that could never have
// been built through Alloc.
func RestoreSnapshot(codec dtcbor.CBORCodec, data []byte) (*AddressSpace, error) {
	var state SnapshotState
	if err := codec.UnmarshalInto(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
	}

	space, err := New(WithCapacity(state.Capacity))
	if err != nil {
		return nil, err
	}

	var occupied uint64
	for _, b := range state.Blocks {
		if len(b.Data) == 0 {
			return nil, fmt.Errorf("%w: empty block at address %d", ErrSnapshotInvalid, b.Addr)
		}
		if _, dup := space.blocks[Addr(b.Addr)]; dup {
			return nil, fmt.Errorf("%w: duplicate block address %d", ErrSnapshotInvalid, b.Addr)
		}
		occupied += uint64(len(b.Data))
		if occupied > state.Capacity {
			return nil, fmt.Errorf(
				"%w: blocks total %d > capacity %d", ErrSnapshotInvalid, occupied, state.Capacity)
		}
		buf := make([]byte, len(b.Data))
		copy(buf, b.Data)
		space.blocks[Addr(b.Addr)] = buf
	}
	for name, addr := range state.Names {
		space.names[name] = Addr(addr)
	}
	return space, nil
}
