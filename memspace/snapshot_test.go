package memspace

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/veldtlabs/go-memspace/memtesting"
)

func TestSnapshotRoundTrip(t *testing.T) {
	tc := memtesting.NewTestContext(t, memtesting.TestConfig{
		Seed: 1698342521, TestLabelPrefix: "TestSnapshotRoundTrip",
	})
	g := tc.G

	codec, err := NewSnapshotCodec()
	assert.NilError(t, err)

	s, err := New(WithCapacity(1024))
	assert.NilError(t, err)

	var addrs []Addr
	for i := 0; i < 5; i++ {
		payload, n := g.PayloadSized(64)
		a, err := s.Alloc(n)
		assert.NilError(t, err)
		_, err = s.Write(a, payload, 0)
		assert.NilError(t, err)
		addrs = append(addrs, a)
	}
	assert.NilError(t, s.SetVar("head", addrs[0]))
	assert.NilError(t, s.SetVar("tail", addrs[4]))

	data, err := s.Snapshot(codec)
	assert.NilError(t, err)
	tc.Log.Debugf("snapshot: %d bytes", len(data))

	restored, err := RestoreSnapshot(codec, data)
	assert.NilError(t, err)

	assert.Equal(t, s.Capacity(), restored.Capacity())
	assert.Equal(t, s.Size(), restored.Size())
	assert.Equal(t, s.ByteLength(), restored.ByteLength())
	assert.DeepEqual(t, s.Names(), restored.Names())

	for _, a := range addrs {
		want, err := s.ReadAll(a)
		assert.NilError(t, err)
		got, err := restored.ReadAll(a)
		assert.NilError(t, err)
		assert.DeepEqual(t, want, got)
	}

	// the restored space is independent of the source
	orig, err := s.Read(addrs[0], 1, 0)
	assert.NilError(t, err)
	before := orig[0]
	_, err = restored.Fill(addrs[0], ^before, 1, 0)
	assert.NilError(t, err)
	orig, err = s.Read(addrs[0], 1, 0)
	assert.NilError(t, err)
	assert.Equal(t, before, orig[0], "mutating the restored space must not reach the source")
}

func TestSnapshotDeterministic(t *testing.T) {
	codec, err := NewSnapshotCodec()
	assert.NilError(t, err)

	s, err := New(WithCapacity(256))
	assert.NilError(t, err)
	for i := 0; i < 8; i++ {
		a, err := s.Alloc(4)
		assert.NilError(t, err)
		_, err = s.WriteUint32(a, uint32(i), 0)
		assert.NilError(t, err)
	}

	first, err := s.Snapshot(codec)
	assert.NilError(t, err)
	second, err := s.Snapshot(codec)
	assert.NilError(t, err)
	assert.DeepEqual(t, first, second)
}

func TestRestoreSnapshotRejectsInvalidState(t *testing.T) {
	codec, err := NewSnapshotCodec()
	assert.NilError(t, err)

	encode := func(state SnapshotState) []byte {
		data, err := codec.MarshalCBOR(state)
		assert.NilError(t, err)
		return data
	}

	_, err = RestoreSnapshot(codec, []byte{0xff, 0x00})
	assert.ErrorIs(t, err, ErrSnapshotInvalid)

	_, err = RestoreSnapshot(codec, encode(SnapshotState{
		Capacity: MaxSpaceBytes + 1,
	}))
	assert.ErrorIs(t, err, ErrCapacityRange)

	_, err = RestoreSnapshot(codec, encode(SnapshotState{
		Capacity: 16,
		Blocks:   []SnapshotBlock{{Addr: 0, Data: nil}},
	}))
	assert.ErrorIs(t, err, ErrSnapshotInvalid)

	_, err = RestoreSnapshot(codec, encode(SnapshotState{
		Capacity: 16,
		Blocks: []SnapshotBlock{
			{Addr: 0, Data: []byte{1}},
			{Addr: 0, Data: []byte{2}},
		},
	}))
	assert.ErrorIs(t, err, ErrSnapshotInvalid)

	_, err = RestoreSnapshot(codec, encode(SnapshotState{
		Capacity: 4,
		Blocks:   []SnapshotBlock{{Addr: 0, Data: []byte{1, 2, 3, 4, 5}}},
	}))
	assert.ErrorIs(t, err, ErrSnapshotInvalid)
}
