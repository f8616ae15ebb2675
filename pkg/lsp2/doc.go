// Package lsp2 implements the value encodings and data key derivations of
// the LSP2 ERC725Y JSON Schema standard. It provides the CompactBytesArray
// codec, the VerifiableURI envelope (and the legacy JSONURL form), the
// verification method table, and Singleton / Array / Mapping /
// MappingWithGrouping data key generation.
//
// # Specification
//
// Full specification: https://github.com/lukso-network/LIPs/blob/main/LSPs/LSP-2-ERC725YJSONSchema.md
//
// # CompactBytesArray
//
// A CompactBytesArray is the concatenation of length-prefixed records.
// Every record is a 2-byte big-endian unsigned length followed by that many
// payload bytes. There are no separators and no padding:
//
//	encoded, err := lsp2.EncodeCompactBytesArray([]string{"0xcafe", "0xbeefdeadbeef0000cafe"})
//	// encoded == "0x0002cafe000abeefdeadbeef0000cafe"
//
// # VerifiableURI
//
// A VerifiableURI binds a locator to the hash of the content it points to:
//
//	[0x0000][method id: 4 bytes][hash length: 2 bytes BE][hash][url: UTF-8]
//
// The url runs to the end of the value and carries no length prefix.
//
//	encoded, err := lsp2.EncodeVerifiableURI(
//		map[string]any{"name": "Tom"},
//		"https://google.com/",
//	)
//
// Documents are serialized with shared.StringifyJSON before hashing, so
// the same logical document with a different key order hashes differently.
package lsp2
