package main

import (
	"fmt"
	"strings"

	"github.com/lukso-network/lsp-utils-go/pkg/lsp4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	outputJSON          = "json"
	outputHash          = "hash"
	outputVerifiableURI = "verifiable-uri"
)

func (app *cli) lsp4Command() *cobra.Command {
	command := &cobra.Command{
		Use:   "lsp4",
		Short: "LSP4 Digital Asset metadata helpers",
	}

	var (
		name        string
		description string
		links       []string
		attributes  []string
		output      string
	)
	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "Generate an LSP4Metadata document",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := lsp4.NewMetadataBuilder().SetName(name).SetDescription(description)
			for _, link := range links {
				title, url, err := splitPair(link)
				if err != nil {
					return fmt.Errorf("invalid --link: %w", err)
				}
				builder.AddLink(title, url)
			}
			for _, attribute := range attributes {
				key, value, err := splitPair(attribute)
				if err != nil {
					return fmt.Errorf("invalid --attribute: %w", err)
				}
				builder.AddAttribute(key, value, "string")
			}
			if _, err := builder.Build(); err != nil {
				return err
			}

			params := builder.Params()
			switch output {
			case outputJSON:
				serialized, err := lsp4.GenerateLSP4JSON(params)
				if err != nil {
					return err
				}
				app.println(serialized)
			case outputHash:
				result, err := lsp4.GenerateLSP4JSONWithHash(params)
				if err != nil {
					return err
				}
				app.println(result.JSON, result.Hash)
			case outputVerifiableURI:
				encoded, err := lsp4.GenerateLSP4JSONVerifiableURI(params)
				if err != nil {
					return err
				}
				app.println(encoded)
			default:
				return fmt.Errorf("unsupported --output %q", output)
			}
			app.logger.Debug("generated lsp4 metadata", zap.String("output", output), zap.String("name", params.Name))
			return nil
		},
	}
	jsonCmd.Flags().StringVar(&name, "name", "", "Asset name")
	jsonCmd.Flags().StringVar(&description, "description", "", "Asset description")
	jsonCmd.Flags().StringArrayVar(&links, "link", nil, "Link as title=url, repeatable")
	jsonCmd.Flags().StringArrayVar(&attributes, "attribute", nil, "Attribute as key=value, repeatable")
	jsonCmd.Flags().StringVar(&output, "output", outputJSON, "One of json, hash, verifiable-uri")
	command.AddCommand(jsonCmd)
	return command
}

func splitPair(value string) (string, string, error) {
	key, rest, found := strings.Cut(value, "=")
	if !found || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", value)
	}
	return strings.TrimSpace(key), strings.TrimSpace(rest), nil
}
