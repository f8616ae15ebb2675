package lsp6

import (
	"github.com/holiman/uint256"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

const (
	uint128Bytes           = 16
	validityTimestampBytes = 2 * uint128Bytes
)

// CreateValidityTimestamp packs notBefore and notAfter as two big-endian
// uint128 values into a bytes32.
func CreateValidityTimestamp(notBefore uint64, notAfter uint64) string {
	encoded := make([]byte, 0, validityTimestampBytes)
	encoded = append(encoded, packUint128(uint256.NewInt(notBefore))...)
	encoded = append(encoded, packUint128(uint256.NewInt(notAfter))...)
	return shared.EncodeHex(encoded)
}

// DecodeValidityTimestamp splits a bytes32 validity value into its
// notBefore and notAfter halves.
func DecodeValidityTimestamp(value string) (*uint256.Int, *uint256.Int, error) {
	raw, err := shared.DecodeHexExactLength(value, validityTimestampBytes)
	if err != nil {
		return nil, nil, err
	}
	notBefore := new(uint256.Int).SetBytes(raw[:uint128Bytes])
	notAfter := new(uint256.Int).SetBytes(raw[uint128Bytes:])
	return notBefore, notAfter, nil
}

func packUint128(value *uint256.Int) []byte {
	full := value.Bytes32()
	return full[len(full)-uint128Bytes:]
}
