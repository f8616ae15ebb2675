package lsp6

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lukso-network/lsp-utils-go/pkg/lsp2"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

// CallType is the restriction bitmask of an allowed call.
type CallType uint32

const (
	CallTypeTransferValue CallType = 0x00000001
	CallTypeCall          CallType = 0x00000002
	CallTypeStaticCall    CallType = 0x00000004
	CallTypeDelegateCall  CallType = 0x00000008
)

const (
	callTypesBytes   = 4
	interfaceIDBytes = 4
	selectorBytes    = 4
	// AllowedCallBytes is the width of one encoded allowed call.
	AllowedCallBytes = callTypesBytes + common.AddressLength + interfaceIDBytes + selectorBytes
)

// AllowedCall restricts a controller to calling Address, optionally only
// contracts supporting InterfaceID and only FunctionSelector. 0xffffffff
// in either field means any.
type AllowedCall struct {
	CallTypes        CallType
	Address          common.Address
	InterfaceID      [interfaceIDBytes]byte
	FunctionSelector [selectorBytes]byte
}

// NewAllowedCall parses the hex address, interface id and selector.
func NewAllowedCall(callTypes CallType, address string, interfaceID string, selector string) (AllowedCall, error) {
	if !common.IsHexAddress(address) {
		return AllowedCall{}, fmt.Errorf("invalid address %q", address)
	}
	interfaceBytes, err := shared.DecodeHexExactLength(interfaceID, interfaceIDBytes)
	if err != nil {
		return AllowedCall{}, err
	}
	selectorValue, err := shared.DecodeHexExactLength(selector, selectorBytes)
	if err != nil {
		return AllowedCall{}, err
	}

	call := AllowedCall{
		CallTypes: callTypes,
		Address:   common.HexToAddress(address),
	}
	copy(call.InterfaceID[:], interfaceBytes)
	copy(call.FunctionSelector[:], selectorValue)
	return call, nil
}

// Has reports whether every bit of callType is allowed.
func (c AllowedCall) Has(callType CallType) bool {
	return c.CallTypes&callType == callType
}

// Bytes returns callTypes(4) + address(20) + interfaceId(4) + selector(4).
func (c AllowedCall) Bytes() []byte {
	encoded := make([]byte, 0, AllowedCallBytes)
	encoded = binary.BigEndian.AppendUint32(encoded, uint32(c.CallTypes))
	encoded = append(encoded, c.Address.Bytes()...)
	encoded = append(encoded, c.InterfaceID[:]...)
	encoded = append(encoded, c.FunctionSelector[:]...)
	return encoded
}

func (c AllowedCall) String() string {
	parts := []string{
		fmt.Sprintf("0x%08x", uint32(c.CallTypes)),
		strings.ToLower(c.Address.Hex()),
		shared.EncodeHex(c.InterfaceID[:]),
		shared.EncodeHex(c.FunctionSelector[:]),
	}
	return strings.Join(parts, ":")
}

// EncodeAllowedCalls encodes calls as a CompactBytesArray of 32-byte
// entries.
func EncodeAllowedCalls(calls []AllowedCall) (string, error) {
	elements := make([][]byte, 0, len(calls))
	for _, call := range calls {
		elements = append(elements, call.Bytes())
	}
	encoded, err := lsp2.EncodeCompactBytesArrayBytes(elements)
	if err != nil {
		return "", err
	}
	return shared.EncodeHex(encoded), nil
}

// DecodeAllowedCalls is the inverse of EncodeAllowedCalls.
func DecodeAllowedCalls(encoded string) ([]AllowedCall, error) {
	raw, err := shared.DecodeHex(encoded)
	if err != nil {
		return nil, err
	}
	elements, err := lsp2.DecodeCompactBytesArrayBytes(raw)
	if err != nil {
		return nil, err
	}

	calls := make([]AllowedCall, 0, len(elements))
	for _, element := range elements {
		if len(element) != AllowedCallBytes {
			return nil, shared.NewInvalidLengthError(shared.EncodeHex(element), len(element), AllowedCallBytes, AllowedCallBytes)
		}

		offset := 0
		call := AllowedCall{CallTypes: CallType(binary.BigEndian.Uint32(element[offset : offset+callTypesBytes]))}
		offset += callTypesBytes
		call.Address = common.BytesToAddress(element[offset : offset+common.AddressLength])
		offset += common.AddressLength
		copy(call.InterfaceID[:], element[offset:offset+interfaceIDBytes])
		offset += interfaceIDBytes
		copy(call.FunctionSelector[:], element[offset:offset+selectorBytes])
		calls = append(calls, call)
	}
	return calls, nil
}
