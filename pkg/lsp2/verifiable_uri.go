package lsp2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

// EncodeVerifiableURI hashes the JSON serialization of document with
// keccak256(utf8) and returns the VerifiableURI pointing at url.
func EncodeVerifiableURI(document any, url string) (string, error) {
	content, err := shared.CanonicalJSON(document)
	if err != nil {
		return "", err
	}

	encoded, err := EncodeVerifiableURIBytes(content, MethodKeccak256UTF8, url)
	if err != nil {
		return "", err
	}
	return shared.EncodeHex(encoded), nil
}

// EncodeVerifiableURIBytes builds the envelope for already serialized
// content hashed with method.
func EncodeVerifiableURIBytes(content []byte, method VerificationMethod, url string) ([]byte, error) {
	hash, err := method.Hash(content)
	if err != nil {
		return nil, err
	}
	return EncodeVerifiableURIWithHash(method, hash, url)
}

// EncodeVerifiableURIWithHash builds the envelope from a precomputed hash.
// url must be valid UTF-8.
func EncodeVerifiableURIWithHash(method VerificationMethod, hash []byte, url string) ([]byte, error) {
	if !method.Supported() {
		return nil, shared.NewMalformedError(
			shared.ErrorCodeUnsupportedVerificationMethod,
			"unsupported verification method %q",
			method.Name,
		)
	}
	if len(hash) == 0 || len(hash) > math.MaxUint16 {
		return nil, shared.NewInvalidLengthError(shared.EncodeHex(hash), len(hash), 1, math.MaxUint16)
	}
	if !utf8.ValidString(url) {
		return nil, shared.NewMalformedError(
			shared.ErrorCodeMalformedVerifiableURI,
			"verifiable URI locator %q is not valid UTF-8",
			url,
		)
	}

	encoded := make([]byte, 0, VerifiableURIHeaderBytes+len(hash)+len(url))
	encoded = binary.BigEndian.AppendUint16(encoded, VerifiableURIFormatID)
	encoded = append(encoded, method.ID[:]...)
	encoded = binary.BigEndian.AppendUint16(encoded, uint16(len(hash)))
	encoded = append(encoded, hash...)
	encoded = append(encoded, url...)
	return encoded, nil
}

// DecodeVerifiableURI parses a hex VerifiableURI value.
func DecodeVerifiableURI(encoded string) (VerifiableURI, error) {
	raw, err := shared.DecodeHex(encoded)
	if err != nil {
		return VerifiableURI{}, err
	}
	return DecodeVerifiableURIBytes(raw)
}

// DecodeVerifiableURIBytes parses a raw VerifiableURI value.
func DecodeVerifiableURIBytes(raw []byte) (VerifiableURI, error) {
	if len(raw) < VerifiableURIHeaderBytes {
		return VerifiableURI{}, shared.NewMalformedError(
			shared.ErrorCodeMalformedVerifiableURI,
			"verifiable URI must be at least %d bytes, got %d",
			VerifiableURIHeaderBytes,
			len(raw),
		)
	}

	formatID := binary.BigEndian.Uint16(raw[0:VerifiableURIFormatBytes])
	if formatID != VerifiableURIFormatID {
		return VerifiableURI{}, shared.NewMalformedError(
			shared.ErrorCodeMalformedVerifiableURI,
			"unsupported verifiable URI format id 0x%04x",
			formatID,
		)
	}

	methodOffset := VerifiableURIFormatBytes
	method, err := MethodByID(raw[methodOffset : methodOffset+VerificationMethodIDBytes])
	if err != nil {
		return VerifiableURI{}, err
	}

	lengthOffset := methodOffset + VerificationMethodIDBytes
	hashLength := int(binary.BigEndian.Uint16(raw[lengthOffset : lengthOffset+VerifiableURIHashLengthBytes]))
	if hashLength > len(raw)-VerifiableURIHeaderBytes {
		return VerifiableURI{}, shared.NewMalformedError(
			shared.ErrorCodeMalformedVerifiableURI,
			"verifiable URI declares a %d byte hash but only %d bytes remain",
			hashLength,
			len(raw)-VerifiableURIHeaderBytes,
		)
	}

	hashEnd := VerifiableURIHeaderBytes + hashLength
	url := raw[hashEnd:]
	if !utf8.Valid(url) {
		return VerifiableURI{}, shared.NewMalformedError(
			shared.ErrorCodeMalformedVerifiableURI,
			"verifiable URI locator is not valid UTF-8",
		)
	}

	hash := make([]byte, hashLength)
	copy(hash, raw[VerifiableURIHeaderBytes:hashEnd])
	return VerifiableURI{
		Method: method,
		Hash:   hash,
		URL:    string(url),
	}, nil
}

// VerifyVerifiableURI reports whether content hashes to the value stored
// in the encoded VerifiableURI.
func VerifyVerifiableURI(encoded string, content []byte) (bool, error) {
	decoded, err := DecodeVerifiableURI(encoded)
	if err != nil {
		return false, err
	}
	return decoded.Verify(content)
}

// Verify reports whether content matches the hash of u.
func (u VerifiableURI) Verify(content []byte) (bool, error) {
	digest, err := u.Method.Hash(content)
	if err != nil {
		return false, err
	}
	return bytes.Equal(digest, u.Hash), nil
}

// HashHex returns the 0x-prefixed hash of u.
func (u VerifiableURI) HashHex() string {
	return shared.EncodeHex(u.Hash)
}

func (u VerifiableURI) String() string {
	return fmt.Sprintf("%s:%s@%s", u.Method.Name, u.HashHex(), u.URL)
}
