package lsp4

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/lukso-network/lsp-utils-go/pkg/erc725y"
	"github.com/lukso-network/lsp-utils-go/pkg/lsp2"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
)

// BuildMetadata merges params into the LSP4Metadata document. Nil
// collections become empty arrays.
func BuildMetadata(params MetadataParams) MetadataJSON {
	images := make([][]any, 0, len(params.Images.ImageFields))
	for _, field := range params.Images.ImageFields {
		images = append(images, mergeEntries(field.Images, field.LSP7Images, field.LSP8Images))
	}

	links := params.Links
	if links == nil {
		links = []Link{}
	}
	attributes := params.Attributes
	if attributes == nil {
		attributes = []Attribute{}
	}

	return MetadataJSON{
		LSP4Metadata: Metadata{
			Name:        params.Name,
			Description: params.Description,
			Links:       links,
			Icon:        mergeEntries(params.Icons.Icons, params.Icons.LSP7Icons, params.Icons.LSP8Icons),
			Images:      images,
			Assets:      mergeEntries(params.Assets.Assets, params.Assets.LSP7Assets, params.Assets.LSP8Assets),
			Attributes:  attributes,
		},
	}
}

func mergeEntries[T any](own []T, lsp7 []LSP7Asset, lsp8 []LSP8Asset) []any {
	merged := make([]any, 0, len(own)+len(lsp7)+len(lsp8))
	for _, entry := range own {
		merged = append(merged, entry)
	}
	for _, entry := range lsp7 {
		merged = append(merged, entry)
	}
	for _, entry := range lsp8 {
		merged = append(merged, entry)
	}
	return merged
}

// GenerateLSP4JSON returns the serialized LSP4Metadata document.
func GenerateLSP4JSON(params MetadataParams) (string, error) {
	serialized, err := shared.StringifyJSON(BuildMetadata(params))
	if err != nil {
		return "", err
	}
	return string(serialized), nil
}

// GenerateLSP4JSONWithHash returns the serialized document and the
// keccak256 hash of its UTF-8 bytes.
func GenerateLSP4JSONWithHash(params MetadataParams) (JSONWithHash, error) {
	serialized, err := GenerateLSP4JSON(params)
	if err != nil {
		return JSONWithHash{}, err
	}
	return JSONWithHash{
		JSON: serialized,
		Hash: shared.Keccak256Hex([]byte(serialized)),
	}, nil
}

// GenerateLSP4JSONVerifiableURI embeds the document in a base64 data URI
// and returns the VerifiableURI referencing it.
func GenerateLSP4JSONVerifiableURI(params MetadataParams) (string, error) {
	serialized, err := GenerateLSP4JSON(params)
	if err != nil {
		return "", err
	}

	url := DataURI([]byte(serialized))
	encoded, err := lsp2.EncodeVerifiableURIBytes([]byte(serialized), lsp2.MethodKeccak256UTF8, url)
	if err != nil {
		return "", err
	}
	return shared.EncodeHex(encoded), nil
}

// DataURI returns content as a data:application/json;base64 URI.
func DataURI(content []byte) string {
	return lsp2.JSONDataURIPrefix + base64.StdEncoding.EncodeToString(content)
}

// EncodeAssetMetadata returns the LSP4Metadata data key and the
// VerifiableURI of json hosted at url.
func EncodeAssetMetadata(json any, url string) (erc725y.DataKeyValue, error) {
	value, err := lsp2.EncodeVerifiableURI(json, url)
	if err != nil {
		return erc725y.DataKeyValue{}, err
	}
	return erc725y.NewDataKeyValue(MetadataKey, value)
}

// SetAssetMetadata validates json, encodes it and writes the result to
// store under MetadataKey with a single SetData call.
//
// The @lukso/lsp-utils JavaScript setAssetMetadata writes under the
// LSP3Profile key instead. Values written by that function are not found
// under MetadataKey.
func SetAssetMetadata(ctx context.Context, store erc725y.DataStore, json any, url string) error {
	if store == nil {
		return fmt.Errorf("data store is required")
	}
	kv, err := EncodeAssetMetadata(json, url)
	if err != nil {
		return err
	}
	if err := kv.Write(ctx, store); err != nil {
		return fmt.Errorf("failed to set %s: %w", MetadataKeyName, err)
	}
	return nil
}
