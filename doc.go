// Package lsputils is a Go toolkit for the LUKSO LSP data standards. It
// encodes and decodes the values stored in ERC725Y data keys.
//
// # Standards Implemented
//
//   - LSP2: ERC725Y JSON Schema (CompactBytesArray, VerifiableURI, JSONURL,
//     data key generation)
//   - LSP3: Profile Metadata
//   - LSP4: Digital Asset Metadata
//   - LSP6: Key Manager (AllowedERC725YDataKeys, AllowedCalls, validity
//     timestamps)
//
// Values are pure byte transformations. Writing them to a contract goes
// through the erc725y.DataStore interface.
//
// # Installation
//
//	go get github.com/lukso-network/lsp-utils-go@latest
package lsputils
