package shared

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// DecodeHex decodes a 0x-prefixed hex string with an even number of digits.
func DecodeHex(value string) ([]byte, error) {
	decoded, err := hexutil.Decode(value)
	if err != nil {
		return nil, NewNotHexError(value)
	}
	return decoded, nil
}

// DecodeHexExactLength decodes hex and enforces the decoded byte length.
func DecodeHexExactLength(value string, expected int) ([]byte, error) {
	decoded, err := DecodeHex(value)
	if err != nil {
		return nil, err
	}
	if len(decoded) != expected {
		return nil, NewInvalidLengthError(value, len(decoded), expected, expected)
	}
	return decoded, nil
}

// EncodeHex returns the lowercase 0x-prefixed hex form of data.
func EncodeHex(data []byte) string {
	return hexutil.Encode(data)
}

// IsHex reports whether value is a 0x-prefixed even-length hex string.
func IsHex(value string) bool {
	_, err := hexutil.Decode(value)
	return err == nil
}

func Keccak256(data []byte) []byte {
	return crypto.Keccak256(data)
}

func Keccak256Hex(data []byte) string {
	return hexutil.Encode(crypto.Keccak256(data))
}
