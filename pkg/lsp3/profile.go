package lsp3

import (
	"context"
	"fmt"

	"github.com/lukso-network/lsp-utils-go/pkg/erc725y"
	"github.com/lukso-network/lsp-utils-go/pkg/lsp2"
)

// EncodeProfileMetadata returns the LSP3Profile data key and the
// VerifiableURI of json hosted at url.
func EncodeProfileMetadata(json any, url string) (erc725y.DataKeyValue, error) {
	value, err := lsp2.EncodeVerifiableURI(json, url)
	if err != nil {
		return erc725y.DataKeyValue{}, err
	}
	return erc725y.NewDataKeyValue(ProfileKey, value)
}

// SetProfileMetadata validates json, encodes it and writes the result to
// store with a single SetData call. ctx is passed to the store unchanged.
func SetProfileMetadata(ctx context.Context, store erc725y.DataStore, json any, url string) error {
	if store == nil {
		return fmt.Errorf("data store is required")
	}
	kv, err := EncodeProfileMetadata(json, url)
	if err != nil {
		return err
	}
	if err := kv.Write(ctx, store); err != nil {
		return fmt.Errorf("failed to set %s: %w", ProfileKeyName, err)
	}
	return nil
}
