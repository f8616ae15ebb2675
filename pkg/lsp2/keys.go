package lsp2

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

const (
	mappingFirstWordBytes  = 10
	mappingLastWordBytes   = 20
	groupingFirstWordBytes = 6
	groupingMiddleBytes    = 4
	mappingSeparatorBytes  = 2
	arrayPrefixBytes       = 16
)

// GenerateSingletonKey returns keccak256(name).
func GenerateSingletonKey(name string) string {
	return shared.Keccak256Hex([]byte(name))
}

// GenerateArrayKey returns keccak256(name) for an Array key name such as
// "LSP12IssuedAssets[]".
func GenerateArrayKey(name string) (string, error) {
	if !strings.HasSuffix(name, "[]") || len(name) == len("[]") {
		return "", fmt.Errorf("array key name %q must end with []", name)
	}
	return shared.Keccak256Hex([]byte(name)), nil
}

// GenerateArrayElementKeyAtIndex returns the data key of the element at
// index: the first 16 bytes of the array key followed by the index as a
// uint128. arrayKey is either a 32-byte hex key or an array key name.
func GenerateArrayElementKeyAtIndex(arrayKey string, index uint64) (string, error) {
	var keyBytes []byte
	if shared.IsHex(arrayKey) {
		decoded, err := shared.DecodeHexExactLength(arrayKey, DataKeyBytes)
		if err != nil {
			return "", err
		}
		keyBytes = decoded
	} else {
		generated, err := GenerateArrayKey(arrayKey)
		if err != nil {
			return "", err
		}
		keyBytes, _ = shared.DecodeHex(generated)
	}

	elementKey := make([]byte, 0, DataKeyBytes)
	elementKey = append(elementKey, keyBytes[:arrayPrefixBytes]...)
	elementKey = append(elementKey, uint128Bytes(uint256.NewInt(index))...)
	return shared.EncodeHex(elementKey), nil
}

// GenerateMappingKey returns firstWord(10) + 0x0000 + lastWord(20). A hex
// word is used as is and must have the exact width; any other word is
// replaced by the leading bytes of its keccak256 hash.
func GenerateMappingKey(firstWord string, lastWord string) (string, error) {
	first, err := mappingWord(firstWord, mappingFirstWordBytes)
	if err != nil {
		return "", err
	}
	last, err := mappingWord(lastWord, mappingLastWordBytes)
	if err != nil {
		return "", err
	}

	key := make([]byte, 0, DataKeyBytes)
	key = append(key, first...)
	key = append(key, make([]byte, mappingSeparatorBytes)...)
	key = append(key, last...)
	return shared.EncodeHex(key), nil
}

// GenerateMappingWithGroupingKey returns
// firstWord(6) + middleWord(4) + 0x0000 + lastWord(20).
func GenerateMappingWithGroupingKey(firstWord string, middleWord string, lastWord string) (string, error) {
	first, err := mappingWord(firstWord, groupingFirstWordBytes)
	if err != nil {
		return "", err
	}
	middle, err := mappingWord(middleWord, groupingMiddleBytes)
	if err != nil {
		return "", err
	}
	last, err := mappingWord(lastWord, mappingLastWordBytes)
	if err != nil {
		return "", err
	}

	key := make([]byte, 0, DataKeyBytes)
	key = append(key, first...)
	key = append(key, middle...)
	key = append(key, make([]byte, mappingSeparatorBytes)...)
	key = append(key, last...)
	return shared.EncodeHex(key), nil
}

func mappingWord(word string, width int) ([]byte, error) {
	if shared.IsHex(word) {
		return shared.DecodeHexExactLength(word, width)
	}
	return shared.Keccak256([]byte(word))[:width], nil
}

// IsValidArrayLengthValue reports whether value is a 16-byte uint128, the
// encoding of the length stored under an Array key.
func IsValidArrayLengthValue(value string) bool {
	_, err := shared.DecodeHexExactLength(value, ArrayLengthBytes)
	return err == nil
}

// EncodeArrayLength encodes length as the 16-byte value of an Array key.
func EncodeArrayLength(length uint64) string {
	return shared.EncodeHex(uint128Bytes(uint256.NewInt(length)))
}

// DecodeArrayLength decodes the 16-byte value stored under an Array key.
func DecodeArrayLength(value string) (*uint256.Int, error) {
	raw, err := shared.DecodeHexExactLength(value, ArrayLengthBytes)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(raw), nil
}

func uint128Bytes(value *uint256.Int) []byte {
	full := value.Bytes32()
	return full[DataKeyBytes-ArrayLengthBytes:]
}
