package lsp4

import (
	"fmt"
	"strings"
)

type MetadataBuilder struct {
	params MetadataParams
}

func NewMetadataBuilder() *MetadataBuilder {
	return &MetadataBuilder{}
}

func (builder *MetadataBuilder) SetName(name string) *MetadataBuilder {
	builder.params.Name = strings.TrimSpace(name)
	return builder
}

func (builder *MetadataBuilder) SetDescription(description string) *MetadataBuilder {
	builder.params.Description = strings.TrimSpace(description)
	return builder
}

func (builder *MetadataBuilder) AddLink(title string, url string) *MetadataBuilder {
	trimmedURL := strings.TrimSpace(url)
	if trimmedURL == "" {
		return builder
	}
	builder.params.Links = append(builder.params.Links, Link{
		Title: strings.TrimSpace(title),
		URL:   trimmedURL,
	})
	return builder
}

// AddAttribute sets the attribute stored under key, replacing an earlier
// value for the same key.
func (builder *MetadataBuilder) AddAttribute(key string, value string, attributeType any) *MetadataBuilder {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return builder
	}

	for index := range builder.params.Attributes {
		if builder.params.Attributes[index].Key == trimmedKey {
			builder.params.Attributes[index].Value = value
			builder.params.Attributes[index].Type = attributeType
			return builder
		}
	}
	builder.params.Attributes = append(builder.params.Attributes, Attribute{
		Key:   trimmedKey,
		Value: value,
		Type:  attributeType,
	})
	return builder
}

func (builder *MetadataBuilder) AddIcon(icon Image) *MetadataBuilder {
	builder.params.Icons.Icons = append(builder.params.Icons.Icons, icon)
	return builder
}

func (builder *MetadataBuilder) AddLSP7Icon(icon LSP7Asset) *MetadataBuilder {
	builder.params.Icons.LSP7Icons = append(builder.params.Icons.LSP7Icons, icon)
	return builder
}

func (builder *MetadataBuilder) AddLSP8Icon(icon LSP8Asset) *MetadataBuilder {
	builder.params.Icons.LSP8Icons = append(builder.params.Icons.LSP8Icons, icon)
	return builder
}

func (builder *MetadataBuilder) AddImageField(field ImageField) *MetadataBuilder {
	builder.params.Images.ImageFields = append(builder.params.Images.ImageFields, field)
	return builder
}

func (builder *MetadataBuilder) AddAsset(asset Asset) *MetadataBuilder {
	builder.params.Assets.Assets = append(builder.params.Assets.Assets, asset)
	return builder
}

func (builder *MetadataBuilder) AddLSP7Asset(asset LSP7Asset) *MetadataBuilder {
	builder.params.Assets.LSP7Assets = append(builder.params.Assets.LSP7Assets, asset)
	return builder
}

func (builder *MetadataBuilder) AddLSP8Asset(asset LSP8Asset) *MetadataBuilder {
	builder.params.Assets.LSP8Assets = append(builder.params.Assets.LSP8Assets, asset)
	return builder
}

func (builder *MetadataBuilder) Params() MetadataParams {
	return builder.params
}

func (builder *MetadataBuilder) Build() (MetadataJSON, error) {
	if builder.params.Name == "" {
		return MetadataJSON{}, fmt.Errorf("name is required for LSP4 metadata")
	}
	return BuildMetadata(builder.params), nil
}
