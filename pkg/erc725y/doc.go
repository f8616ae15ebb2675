// Package erc725y defines the storage-write primitive the metadata setters
// write through: a (data key, value) store in the shape of the ERC725Y
// getData / setData interface, plus an in-process MemoryStore.
//
// Contract-backed stores live outside this module; any type with SetData
// and GetData methods can be passed to lsp3.SetProfileMetadata or
// lsp4.SetAssetMetadata.
package erc725y
