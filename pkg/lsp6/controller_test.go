package lsp6

import (
	"errors"
	"strings"
	"testing"

	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

const (
	generatorCompressed   = "0x0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	generatorUncompressed = "0x0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	generatorAddress = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"
)

func TestControllerAddress(t *testing.T) {
	for _, publicKey := range []string{generatorCompressed, generatorUncompressed} {
		address, err := ControllerAddress(publicKey)
		if err != nil {
			t.Fatalf("ControllerAddress failed: %v", err)
		}
		if address.Hex() != generatorAddress {
			t.Fatalf("unexpected address: %s", address.Hex())
		}
	}

	if _, err := ControllerAddress("0x02cafe"); err == nil {
		t.Fatalf("expected invalid public key to fail")
	}
	if _, err := ControllerAddress("not hex"); !errors.Is(err, shared.ErrNotHex) {
		t.Fatalf("expected not_hex, got %v", err)
	}
}

func TestControllerPermissionKeys(t *testing.T) {
	keys, err := ControllerPermissionKeys(generatorCompressed)
	if err != nil {
		t.Fatalf("ControllerPermissionKeys failed: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("expected three keys, got %d", len(keys))
	}

	suffix := strings.ToLower(strings.TrimPrefix(generatorAddress, "0x"))
	prefixes := []string{"0x4b80742de2bf82acb3630000", "0x4b80742de2bf393a64c70000", "0x4b80742de2bf866c29110000"}
	for index, key := range keys {
		if key != prefixes[index]+suffix {
			t.Fatalf("unexpected key %d: %s", index, key)
		}
	}
}
