package lsp4

import "testing"

func TestMetadataBuilder(t *testing.T) {
	document, err := NewMetadataBuilder().
		SetName("  Test NFT ").
		SetDescription("This is a test NFT collection").
		AddLink("Website", "https://example.com").
		AddLink("ignored", " ").
		AddAttribute("trait", "common", "string").
		AddAttribute("trait", "rare", "string").
		AddAttribute("", "skipped", "string").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := BuildMetadata(basicParams())
	serialized, _ := GenerateLSP4JSON(basicParams())
	if serialized != basicJSON {
		t.Fatalf("unexpected reference json: %s", serialized)
	}
	if document.LSP4Metadata.Name != expected.LSP4Metadata.Name {
		t.Fatalf("unexpected name: %q", document.LSP4Metadata.Name)
	}
	if len(document.LSP4Metadata.Links) != 1 {
		t.Fatalf("expected one link, got %d", len(document.LSP4Metadata.Links))
	}
	if len(document.LSP4Metadata.Attributes) != 1 || document.LSP4Metadata.Attributes[0].Value != "rare" {
		t.Fatalf("expected attribute to be replaced: %+v", document.LSP4Metadata.Attributes)
	}
}

func TestMetadataBuilderMergesMedia(t *testing.T) {
	builder := NewMetadataBuilder().
		SetName("Test NFT").
		AddIcon(Image{Width: 200, Height: 200, URL: "ipfs://icon"}).
		AddLSP7Icon(LSP7Asset{Address: "0x01"}).
		AddLSP8Icon(LSP8Asset{Address: "0x02", TokenID: "0x03"}).
		AddImageField(ImageField{Images: []Image{{URL: "ipfs://image"}}}).
		AddAsset(Asset{URL: "ipfs://asset", FileType: "json"}).
		AddLSP7Asset(LSP7Asset{Address: "0x04"}).
		AddLSP8Asset(LSP8Asset{Address: "0x05", TokenID: "0x06"})

	document, err := builder.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(document.LSP4Metadata.Icon) != 3 {
		t.Fatalf("expected three icon entries, got %d", len(document.LSP4Metadata.Icon))
	}
	if _, ok := document.LSP4Metadata.Icon[2].(LSP8Asset); !ok {
		t.Fatalf("expected LSP8 icon last, got %T", document.LSP4Metadata.Icon[2])
	}
	if len(document.LSP4Metadata.Images) != 1 || len(document.LSP4Metadata.Assets) != 3 {
		t.Fatalf("unexpected merged media: %+v", document.LSP4Metadata)
	}
	if len(builder.Params().Assets.LSP7Assets) != 1 {
		t.Fatalf("expected params to expose builder input")
	}
}

func TestMetadataBuilderRequiresName(t *testing.T) {
	if _, err := NewMetadataBuilder().SetName("   ").Build(); err == nil {
		t.Fatalf("expected missing name to fail")
	}
}
