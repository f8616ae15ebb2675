// Package ipfs resolves ipfs:// locators found in LSP metadata to gateway
// URLs and derives content identifiers for serialized metadata documents.
//
// Locators are validated by parsing the CID with go-cid before they are
// rewritten, so a malformed ipfs:// value is reported instead of being
// turned into a broken gateway URL.
package ipfs
