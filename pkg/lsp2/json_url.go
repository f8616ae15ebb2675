package lsp2

import (
	"unicode/utf8"

	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

const jsonURLHeaderBytes = VerificationMethodIDBytes + Keccak256DigestBytes

// EncodeJSONURL encodes the legacy JSONURL value:
// [method id: 4 bytes][keccak256 hash: 32 bytes][url: UTF-8].
func EncodeJSONURL(document any, url string) (string, error) {
	if !utf8.ValidString(url) {
		return "", shared.NewMalformedError(
			shared.ErrorCodeMalformedJSONURL,
			"JSONURL locator %q is not valid UTF-8",
			url,
		)
	}
	content, err := shared.CanonicalJSON(document)
	if err != nil {
		return "", err
	}

	hash, err := MethodKeccak256UTF8.Hash(content)
	if err != nil {
		return "", err
	}

	encoded := make([]byte, 0, jsonURLHeaderBytes+len(url))
	encoded = append(encoded, MethodKeccak256UTF8.ID[:]...)
	encoded = append(encoded, hash...)
	encoded = append(encoded, url...)
	return shared.EncodeHex(encoded), nil
}

// DecodeJSONURL parses a legacy JSONURL value.
func DecodeJSONURL(encoded string) (JSONURL, error) {
	raw, err := shared.DecodeHex(encoded)
	if err != nil {
		return JSONURL{}, err
	}
	if len(raw) < jsonURLHeaderBytes {
		return JSONURL{}, shared.NewMalformedError(
			shared.ErrorCodeMalformedJSONURL,
			"JSONURL must be at least %d bytes, got %d",
			jsonURLHeaderBytes,
			len(raw),
		)
	}

	method, err := MethodByID(raw[:VerificationMethodIDBytes])
	if err != nil {
		return JSONURL{}, err
	}

	url := raw[jsonURLHeaderBytes:]
	if !utf8.Valid(url) {
		return JSONURL{}, shared.NewMalformedError(
			shared.ErrorCodeMalformedJSONURL,
			"JSONURL locator is not valid UTF-8",
		)
	}

	hash := make([]byte, Keccak256DigestBytes)
	copy(hash, raw[VerificationMethodIDBytes:jsonURLHeaderBytes])
	return JSONURL{Method: method, Hash: hash, URL: string(url)}, nil
}

// ToVerifiableURI re-encodes a legacy JSONURL in the VerifiableURI format.
func (j JSONURL) ToVerifiableURI() (string, error) {
	encoded, err := EncodeVerifiableURIWithHash(j.Method, j.Hash, j.URL)
	if err != nil {
		return "", err
	}
	return shared.EncodeHex(encoded), nil
}
