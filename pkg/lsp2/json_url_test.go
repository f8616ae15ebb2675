package lsp2

import (
	"errors"
	"strings"
	"testing"

	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

func TestEncodeDecodeJSONURL(t *testing.T) {
	document := map[string]any{"name": "Tom", "description": "Some random description about Tom"}
	encoded, err := EncodeJSONURL(document, "https://google.com/")
	if err != nil {
		t.Fatalf("EncodeJSONURL failed: %v", err)
	}
	if !strings.HasPrefix(encoded, "0x6f357c6a") {
		t.Fatalf("expected keccak256(utf8) prefix: %s", encoded)
	}
	if !strings.HasSuffix(encoded, "68747470733a2f2f676f6f676c652e636f6d2f") {
		t.Fatalf("expected url suffix: %s", encoded)
	}

	decoded, err := DecodeJSONURL(encoded)
	if err != nil {
		t.Fatalf("DecodeJSONURL failed: %v", err)
	}
	if decoded.URL != "https://google.com/" {
		t.Fatalf("unexpected url: %s", decoded.URL)
	}

	verifiable, err := decoded.ToVerifiableURI()
	if err != nil {
		t.Fatalf("ToVerifiableURI failed: %v", err)
	}
	direct, err := EncodeVerifiableURI(document, "https://google.com/")
	if err != nil {
		t.Fatalf("EncodeVerifiableURI failed: %v", err)
	}
	if verifiable != direct {
		t.Fatalf("expected converted JSONURL to equal direct encoding")
	}
}

func TestDecodeJSONURLMalformed(t *testing.T) {
	if _, err := DecodeJSONURL("0x6f357c6a"); !errors.Is(err, shared.ErrMalformedJSONURL) {
		t.Fatalf("expected malformed_json_url, got %v", err)
	}
	if _, err := DecodeJSONURL("0x6f357c6a" + strings.Repeat("00", 32) + "ff"); !errors.Is(err, shared.ErrMalformedJSONURL) {
		t.Fatalf("expected malformed_json_url for invalid locator, got %v", err)
	}
	if _, err := DecodeJSONURL("0x01020304" + strings.Repeat("00", 32)); !errors.Is(err, shared.ErrUnsupportedVerificationMethod) {
		t.Fatalf("expected unsupported method, got %v", err)
	}
}

func TestEncodeJSONURLRejectsInvalidUTF8Locator(t *testing.T) {
	_, err := EncodeJSONURL(map[string]any{"name": "Tom"}, "https://x/\xff")
	if !errors.Is(err, shared.ErrMalformedJSONURL) {
		t.Fatalf("expected malformed_json_url, got %v", err)
	}

	invalid := JSONURL{Method: MethodKeccak256UTF8, Hash: make([]byte, Keccak256DigestBytes), URL: "\xc3"}
	if _, err := invalid.ToVerifiableURI(); !errors.Is(err, shared.ErrMalformedVerifiableURI) {
		t.Fatalf("expected malformed_verifiable_uri, got %v", err)
	}
}

func TestMethodTable(t *testing.T) {
	method, err := MethodByName("keccak256(utf8)")
	if err != nil {
		t.Fatalf("MethodByName failed: %v", err)
	}
	if method.Hex() != "0x6f357c6a" {
		t.Fatalf("unexpected method id: %s", method.Hex())
	}
	if method.Hex() != shared.Keccak256Hex([]byte(method.Name))[:10] {
		t.Fatalf("expected method id to be the hash prefix of its name")
	}

	bytesMethod, err := MethodByID([]byte{0x80, 0x19, 0xf9, 0xb1})
	if err != nil {
		t.Fatalf("MethodByID failed: %v", err)
	}
	if bytesMethod.Name != "keccak256(bytes)" {
		t.Fatalf("unexpected method: %s", bytesMethod.Name)
	}
	if bytesMethod.Hex() != shared.Keccak256Hex([]byte(bytesMethod.Name))[:10] {
		t.Fatalf("expected method id to be the hash prefix of its name")
	}

	if _, err := MethodByName("sha256"); !errors.Is(err, shared.ErrUnsupportedVerificationMethod) {
		t.Fatalf("expected unsupported method, got %v", err)
	}

	methods := SupportedMethods()
	methods[0] = VerificationMethod{}
	if SupportedMethods()[0] != MethodKeccak256UTF8 {
		t.Fatalf("expected SupportedMethods to return a copy")
	}
}
