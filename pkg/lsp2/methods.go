package lsp2

import (
	"bytes"
	"strings"

	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

// VerificationMethod is an entry of the closed verification method table.
// ID is the first four bytes of keccak256(Name).
type VerificationMethod struct {
	Name string
	ID   [VerificationMethodIDBytes]byte
}

var (
	MethodKeccak256UTF8  = VerificationMethod{Name: "keccak256(utf8)", ID: [4]byte{0x6f, 0x35, 0x7c, 0x6a}}
	MethodKeccak256Bytes = VerificationMethod{Name: "keccak256(bytes)", ID: [4]byte{0x80, 0x19, 0xf9, 0xb1}}
)

var supportedMethods = []VerificationMethod{
	MethodKeccak256UTF8,
	MethodKeccak256Bytes,
}

// SupportedMethods returns a copy of the verification method table.
func SupportedMethods() []VerificationMethod {
	methods := make([]VerificationMethod, len(supportedMethods))
	copy(methods, supportedMethods)
	return methods
}

// MethodByName looks a method up by its name, for example "keccak256(utf8)".
func MethodByName(name string) (VerificationMethod, error) {
	trimmed := strings.TrimSpace(name)
	for _, method := range supportedMethods {
		if method.Name == trimmed {
			return method, nil
		}
	}
	return VerificationMethod{}, shared.NewMalformedError(
		shared.ErrorCodeUnsupportedVerificationMethod,
		"unsupported verification method %q",
		name,
	)
}

// MethodByID looks a method up by its 4-byte identifier.
func MethodByID(id []byte) (VerificationMethod, error) {
	for _, method := range supportedMethods {
		if bytes.Equal(method.ID[:], id) {
			return method, nil
		}
	}
	return VerificationMethod{}, shared.NewMalformedError(
		shared.ErrorCodeUnsupportedVerificationMethod,
		"unsupported verification method id %s",
		shared.EncodeHex(id),
	)
}

// Hex returns the 0x-prefixed method identifier.
func (m VerificationMethod) Hex() string {
	return shared.EncodeHex(m.ID[:])
}

// Supported reports whether m is part of the method table.
func (m VerificationMethod) Supported() bool {
	_, err := MethodByID(m.ID[:])
	return err == nil
}

// Hash computes the digest of data for this method. Both supported methods
// hash with keccak256; they differ only in what the content bytes are.
func (m VerificationMethod) Hash(data []byte) ([]byte, error) {
	if !m.Supported() {
		return nil, shared.NewMalformedError(
			shared.ErrorCodeUnsupportedVerificationMethod,
			"unsupported verification method %q",
			m.Name,
		)
	}
	return shared.Keccak256(data), nil
}
