// Package lsp4 builds LSP4 Digital Asset metadata documents and writes
// their references to an ERC725Y store.
//
// GenerateLSP4JSON serializes fields in the fixed LSP4Metadata order so the
// resulting bytes, and therefore the keccak256 hash stored on chain, are
// stable across calls.
package lsp4
