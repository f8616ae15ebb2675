// Package lsp6 encodes the LSP6 Key Manager permission values stored under
// AddressPermissions keys: allowed data keys, allowed calls and validity
// timestamps.
package lsp6
