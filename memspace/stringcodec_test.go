package memspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	type args struct {
		value    string
		encoding string
	}
	tests := []struct {
		name        string
		args        args
		wantEncoded int
	}{
		{"ascii utf-8", args{"Hello", EncodingUTF8}, 5},
		{"multibyte utf-8", args{"héllo ✓", EncodingUTF8}, 10},
		{"latin1", args{"héllo", "ISO-8859-1"}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(WithCapacity(256))
			require.NoError(t, err)

			addr, ok, err := WriteString(s, tt.args.value, 0, tt.args.encoding)
			require.NoError(t, err)
			require.True(t, ok)

			b, err := s.ReadAll(addr)
			require.NoError(t, err)
			assert.Len(t, b, tt.wantEncoded, "block sized exactly to the encoded length")

			got, ok, err := ReadString(s, addr, tt.wantEncoded, 0, tt.args.encoding)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.args.value, got)

			got, ok, err = ReadStringAll(s, addr, tt.args.encoding)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.args.value, got)
		})
	}
}

func TestWriteStringNonzeroOffset(t *testing.T) {
	s, err := New(WithCapacity(64))
	require.NoError(t, err)

	// the block is sized exactly to the encoded length, so any nonzero
	// offset necessarily fails the write's bounds check
	_, ok, err := WriteString(s, "Hello", 1, EncodingUTF8)
	assert.ErrorIs(t, err, ErrRegionRange)
	assert.False(t, ok)
}

func TestWriteStringAllocFailures(t *testing.T) {
	s, err := New(WithCapacity(4))
	require.NoError(t, err)

	// the encoded value does not fit the space
	_, ok, err := WriteString(s, "Hello", 0, EncodingUTF8)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.False(t, ok)

	// an empty string encodes to zero bytes, which is not allocatable
	_, ok, err = WriteString(s, "", 0, EncodingUTF8)
	assert.ErrorIs(t, err, ErrSizeInvalid)
	assert.False(t, ok)
}

func TestStringEncodingResolution(t *testing.T) {
	s, err := New(WithCapacity(64))
	require.NoError(t, err)

	_, _, err = WriteString(s, "Hello", 0, "no-such-encoding")
	assert.Error(t, err)

	_, _, err = ReadString(s, Addr(0), 1, 0, "no-such-encoding")
	assert.Error(t, err)
}

func TestReadStringDeadAddress(t *testing.T) {
	s, err := New(WithCapacity(64))
	require.NoError(t, err)

	got, ok, err := ReadString(s, Addr(9), 1, 0, EncodingUTF8)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", got)

	got, ok, err = ReadStringAll(s, Addr(9), EncodingUTF8)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestReadStringEncodingMismatch(t *testing.T) {
	s, err := New(WithCapacity(64))
	require.NoError(t, err)

	addr, ok, err := WriteString(s, "héllo", 0, "ISO-8859-1")
	require.NoError(t, err)
	require.True(t, ok)

	// decoding latin1 bytes as latin1 round trips; decoding them as utf-8
	// does not reproduce the value (0xe9 is not valid utf-8)
	got, ok, err := ReadStringAll(s, addr, "ISO-8859-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "héllo", got)

	got, ok, err = ReadStringAll(s, addr, EncodingUTF8)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, "héllo", got)
}
