package memspace

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// EncodingUTF8 is the IANA name of the encoding most callers want.
const EncodingUTF8 = "utf-8"

var (
	ErrEncodingUnsupported = errors.New("the text encoding has no usable codec")
)

// resolveEncoding looks the encoding up by IANA name. Some registered names
// resolve but carry no codec, those are reported the same as unknown names.
func resolveEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("resolving text encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrEncodingUnsupported, name)
	}
	return enc, nil
}

// WriteString encodes v using the named text encoding, allocates a fresh
// block sized exactly to the encoded byte length, and writes the bytes into
// it at offset. It returns the new address and the write result.
//
// Because the block is sized exactly, any nonzero offset makes the write's
// bounds check fail: the offset parameter exists for symmetry with Write and
// must be 0 for the overall operation to succeed. The same encoding name
// must be given to ReadString to round trip the value.
func WriteString(s *AddressSpace, v string, offset int, encodingName string) (Addr, bool, error) {
	enc, err := resolveEncoding(encodingName)
	if err != nil {
		return 0, false, err
	}
	data, _, err := transform.Bytes(enc.NewEncoder(), []byte(v))
	if err != nil {
		return 0, false, fmt.Errorf("encoding string as %q: %w", encodingName, err)
	}
	addr, err := s.Alloc(len(data))
	if err != nil {
		return 0, false, err
	}
	ok, err := s.Write(addr, data, offset)
	if err != nil || !ok {
		return addr, false, err
	}
	return addr, true, nil
}

// ReadString reads length bytes at offset from the block at addr and decodes
// them with the named text encoding. A dead address yields ("", false, nil).
func ReadString(s *AddressSpace, addr Addr, length, offset int, encodingName string) (string, bool, error) {
	enc, err := resolveEncoding(encodingName)
	if err != nil {
		return "", false, err
	}
	data, err := s.Read(addr, length, offset)
	if err != nil {
		return "", false, err
	}
	if data == nil {
		return "", false, nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", false, fmt.Errorf("decoding string as %q: %w", encodingName, err)
	}
	return string(decoded), true, nil
}

// ReadStringAll is ReadString for the entire block.
func ReadStringAll(s *AddressSpace, addr Addr, encodingName string) (string, bool, error) {
	b, err := s.ReadAll(addr)
	if err != nil {
		return "", false, err
	}
	if b == nil {
		return "", false, nil
	}
	return ReadString(s, addr, len(b), 0, encodingName)
}
