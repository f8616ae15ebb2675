package lsp4

import "github.com/lukso-network/lsp-utils-go/pkg/lsp2"

const MetadataKeyName = "LSP4Metadata"

// MetadataKey is keccak256("LSP4Metadata").
var MetadataKey = lsp2.GenerateSingletonKey(MetadataKeyName)

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Attribute is a key/value trait. Type is usually a string but numbers and
// booleans are kept as given.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  any    `json:"type"`
}

type HashBasedVerification struct {
	Method string `json:"method"`
	Data   string `json:"data"`
}

type Image struct {
	Width        int                   `json:"width"`
	Height       int                   `json:"height"`
	URL          string                `json:"url"`
	Verification HashBasedVerification `json:"verification"`
}

type Asset struct {
	URL          string                `json:"url"`
	FileType     string                `json:"fileType"`
	Verification HashBasedVerification `json:"verification"`
}

// LSP7Asset references a fungible token contract used as media.
type LSP7Asset struct {
	Address string `json:"address"`
}

// LSP8Asset references a single token of an identifiable digital asset.
type LSP8Asset struct {
	Address string `json:"address"`
	TokenID string `json:"tokenId"`
}

// Icons groups the entries merged into the "icon" field.
type Icons struct {
	Icons     []Image
	LSP7Icons []LSP7Asset
	LSP8Icons []LSP8Asset
}

// ImageField is one entry of the "images" field.
type ImageField struct {
	Images     []Image
	LSP7Images []LSP7Asset
	LSP8Images []LSP8Asset
}

type Images struct {
	ImageFields []ImageField
}

// Assets groups the entries merged into the "assets" field.
type Assets struct {
	Assets     []Asset
	LSP7Assets []LSP7Asset
	LSP8Assets []LSP8Asset
}

// MetadataParams holds every input of GenerateLSP4JSON.
type MetadataParams struct {
	Name        string
	Description string
	Links       []Link
	Attributes  []Attribute
	Icons       Icons
	Images      Images
	Assets      Assets
}

// MetadataJSON is the document hosted at the asset metadata URL.
type MetadataJSON struct {
	LSP4Metadata Metadata `json:"LSP4Metadata"`
}

// Metadata is the merged LSP4Metadata body. Entries of Icon, Images and
// Assets are Image, Asset, LSP7Asset or LSP8Asset values.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Links       []Link      `json:"links"`
	Icon        []any       `json:"icon"`
	Images      [][]any     `json:"images"`
	Assets      []any       `json:"assets"`
	Attributes  []Attribute `json:"attributes"`
}

// JSONWithHash is a serialized metadata document and its keccak256 hash.
type JSONWithHash struct {
	JSON string
	Hash string
}
