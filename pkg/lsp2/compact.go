package lsp2

import (
	"encoding/binary"
	"math"

	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

// EncodeCompactBytesArray encodes hex byte strings as a CompactBytesArray.
// Elements are checked in order; the first element that is not hex or whose
// length is outside [1, 32] bytes aborts the encoding.
func EncodeCompactBytesArray(elements []string) (string, error) {
	return encodeCompactHex(elements, MinCompactElementBytes, MaxCompactElementBytes)
}

// EncodeCompactBytesArrayBytes is EncodeCompactBytesArray for raw elements.
func EncodeCompactBytesArrayBytes(elements [][]byte) ([]byte, error) {
	return encodeCompactEntries(elements, MinCompactElementBytes, MaxCompactElementBytes)
}

// EncodeCompactBytesArrayBounded encodes raw elements whose lengths must lie
// in [minLength, maxLength]. It backs the fixed-size compact arrays of other
// standards, such as the 32-byte entries of LSP6 AllowedCalls.
func EncodeCompactBytesArrayBounded(elements [][]byte, minLength int, maxLength int) ([]byte, error) {
	return encodeCompactEntries(elements, minLength, maxLength)
}

// DecodeCompactBytesArray decodes a hex CompactBytesArray into its elements.
func DecodeCompactBytesArray(encoded string) ([]string, error) {
	raw, err := shared.DecodeHex(encoded)
	if err != nil {
		return nil, err
	}

	elements, err := DecodeCompactBytesArrayBytes(raw)
	if err != nil {
		return nil, err
	}

	decoded := make([]string, 0, len(elements))
	for _, element := range elements {
		decoded = append(decoded, shared.EncodeHex(element))
	}
	return decoded, nil
}

// DecodeCompactBytesArrayBytes reads length-prefixed records until the end
// of encoded. A length prefix cut short by the end of the buffer, or a
// length that runs past it, makes the array malformed.
func DecodeCompactBytesArrayBytes(encoded []byte) ([][]byte, error) {
	elements := make([][]byte, 0)
	offset := 0
	for offset < len(encoded) {
		remaining := len(encoded) - offset
		if remaining < CompactLengthPrefixBytes {
			return nil, shared.NewMalformedError(
				shared.ErrorCodeMalformedCompactArray,
				"compact bytes array has a truncated length prefix at offset %d",
				offset,
			)
		}

		length := int(binary.BigEndian.Uint16(encoded[offset : offset+CompactLengthPrefixBytes]))
		offset += CompactLengthPrefixBytes
		if length > len(encoded)-offset {
			return nil, shared.NewMalformedError(
				shared.ErrorCodeMalformedCompactArray,
				"compact bytes array element at offset %d declares %d bytes but only %d remain",
				offset-CompactLengthPrefixBytes,
				length,
				len(encoded)-offset,
			)
		}

		element := make([]byte, length)
		copy(element, encoded[offset:offset+length])
		elements = append(elements, element)
		offset += length
	}
	return elements, nil
}

// IsCompactBytesArray reports whether value is a well-formed hex
// CompactBytesArray.
func IsCompactBytesArray(value string) bool {
	_, err := DecodeCompactBytesArray(value)
	return err == nil
}

func encodeCompactHex(elements []string, minLength int, maxLength int) (string, error) {
	decoded := make([][]byte, 0, len(elements))
	for _, element := range elements {
		raw, err := shared.DecodeHex(element)
		if err != nil {
			return "", err
		}
		if err := checkCompactElementLength(element, len(raw), minLength, maxLength); err != nil {
			return "", err
		}
		decoded = append(decoded, raw)
	}

	encoded, err := encodeCompactEntries(decoded, minLength, maxLength)
	if err != nil {
		return "", err
	}
	return shared.EncodeHex(encoded), nil
}

func encodeCompactEntries(elements [][]byte, minLength int, maxLength int) ([]byte, error) {
	size := 0
	for _, element := range elements {
		if err := checkCompactElementLength(shared.EncodeHex(element), len(element), minLength, maxLength); err != nil {
			return nil, err
		}
		size += CompactLengthPrefixBytes + len(element)
	}

	encoded := make([]byte, 0, size)
	for _, element := range elements {
		encoded = binary.BigEndian.AppendUint16(encoded, uint16(len(element)))
		encoded = append(encoded, element...)
	}
	return encoded, nil
}

func checkCompactElementLength(value string, length int, minLength int, maxLength int) error {
	if maxLength > math.MaxUint16 {
		maxLength = math.MaxUint16
	}
	if length < minLength || length > maxLength {
		return shared.NewInvalidLengthError(value, length, minLength, maxLength)
	}
	return nil
}
