package lsp6

import (
	"github.com/lukso-network/lsp-utils-go/pkg/lsp2"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

// EncodeAllowedERC725YDataKeys encodes full data keys or data key prefixes
// of 1 to 32 bytes as a CompactBytesArray.
func EncodeAllowedERC725YDataKeys(dataKeys []string) (string, error) {
	return lsp2.EncodeCompactBytesArray(dataKeys)
}

// DecodeAllowedERC725YDataKeys is the inverse of
// EncodeAllowedERC725YDataKeys. Records outside 1 to 32 bytes are rejected.
func DecodeAllowedERC725YDataKeys(encoded string) ([]string, error) {
	elements, err := lsp2.DecodeCompactBytesArray(encoded)
	if err != nil {
		return nil, err
	}
	for _, element := range elements {
		length := (len(element) - 2) / 2
		if length < lsp2.MinCompactElementBytes || length > lsp2.MaxCompactElementBytes {
			return nil, shared.NewInvalidLengthError(element, length, lsp2.MinCompactElementBytes, lsp2.MaxCompactElementBytes)
		}
	}
	return elements, nil
}
