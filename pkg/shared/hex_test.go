package shared

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeHex(t *testing.T) {
	decoded, err := DecodeHex("0xCAFE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(decoded, []byte{0xca, 0xfe}) {
		t.Fatalf("unexpected decoded bytes: %x", decoded)
	}

	empty, err := DecodeHex("0x")
	if err != nil {
		t.Fatalf("unexpected error for empty byte string: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected zero bytes, got %d", len(empty))
	}
}

func TestDecodeHexRejectsInvalid(t *testing.T) {
	invalid := []string{"", "cafe", "0xcaf", "0xzz", "data key", "0x 12"}
	for _, value := range invalid {
		_, err := DecodeHex(value)
		if !errors.Is(err, ErrNotHex) {
			t.Fatalf("expected not_hex for %q, got %v", value, err)
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) || validationErr.Value != value {
			t.Fatalf("expected offending value %q in error, got %v", value, err)
		}
	}
}

func TestDecodeHexExactLength(t *testing.T) {
	if _, err := DecodeHexExactLength("0x0102", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := DecodeHexExactLength("0x010203", 2)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected invalid_length, got %v", err)
	}
}

func TestEncodeHexLowercase(t *testing.T) {
	if encoded := EncodeHex([]byte{0xBE, 0xEF}); encoded != "0xbeef" {
		t.Fatalf("unexpected encoding: %s", encoded)
	}
	if encoded := EncodeHex(nil); encoded != "0x" {
		t.Fatalf("unexpected encoding of empty input: %s", encoded)
	}
}

func TestKeccak256Vectors(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"LSP3Profile", "0x5ef83ad9559033e6e941db7d7c495acdce616347d28e90c7ce47cbfcfcad3bc5"},
		{"LSP4Metadata", "0x9afb95cacc9f95858ec44aa8c3b685511002e30ae54415823f406128b85b238e"},
	}

	for _, tc := range cases {
		if digest := Keccak256Hex([]byte(tc.input)); digest != tc.expected {
			t.Fatalf("unexpected keccak256 of %q: %s", tc.input, digest)
		}
		if len(Keccak256([]byte(tc.input))) != 32 {
			t.Fatalf("expected 32-byte digest for %q", tc.input)
		}
	}
}
