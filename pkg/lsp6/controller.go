package lsp6

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

// ControllerAddress derives the address of the controller owning a
// secp256k1 public key, given in compressed (33 byte) or uncompressed
// (65 byte) SEC form.
func ControllerAddress(publicKey string) (common.Address, error) {
	raw, err := shared.DecodeHex(publicKey)
	if err != nil {
		return common.Address{}, err
	}
	parsed, err := btcec.ParsePubKey(raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid secp256k1 public key: %w", err)
	}

	uncompressed := parsed.SerializeUncompressed()
	digest := shared.Keccak256(uncompressed[1:])
	return common.BytesToAddress(digest[len(digest)-common.AddressLength:]), nil
}

// ControllerPermissionKeys returns the Permissions, AllowedCalls and
// AllowedERC725YDataKeys keys of the controller owning publicKey.
func ControllerPermissionKeys(publicKey string) ([]string, error) {
	address, err := ControllerAddress(publicKey)
	if err != nil {
		return nil, err
	}

	controller := address.Hex()
	builders := []func(string) (string, error){PermissionsKey, AllowedCallsKey, AllowedERC725YDataKeysKey}
	keys := make([]string, 0, len(builders))
	for _, build := range builders {
		key, err := build(controller)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
