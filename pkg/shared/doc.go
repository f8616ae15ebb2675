// Package shared provides common utilities used across the LSP utilities
// for Go. It includes 0x-prefixed hex handling, keccak256 hashing,
// deterministic JSON serialization, JSON document validation, the shared
// validation error taxonomy, and environment variable loading.
//
// This package is typically used internally by the standard packages
// (lsp2, lsp3, lsp4, lsp6) but is also available for direct use when
// building custom encoders for ERC725Y data keys.
//
// # JSON Serialization
//
// Hashes stored in VerifiableURI values are computed over the exact bytes
// of a JSON document. StringifyJSON produces the same bytes a JavaScript
// JSON.stringify call produces for the same document: no whitespace, no
// HTML escaping, struct fields in declaration order and OrderedObject keys
// in insertion order. Plain Go maps serialize with sorted keys.
//
// # Environment Variables
//
// The IPFS gateway used to resolve ipfs:// locators can be configured
// through LSP_IPFS_GATEWAY or IPFS_GATEWAY, either in the environment or
// in a .env file found in the working directory or one of its parents.
package shared
