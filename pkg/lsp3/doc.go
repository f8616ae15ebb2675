// Package lsp3 encodes LSP3 Profile metadata references and writes them to
// an ERC725Y store under the LSP3Profile data key.
package lsp3
