package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lukso-network/lsp-utils-go/pkg/lsp2"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (app *cli) verifiableURICommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "verifiable-uri",
		Short: "VerifiableURI codec",
	}

	var (
		url        string
		file       string
		document   string
		methodName string
	)
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Hash a document and encode the VerifiableURI pointing at --url",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(file, document)
			if err != nil {
				return err
			}
			method, err := lsp2.MethodByName(methodName)
			if err != nil {
				return err
			}
			if method == lsp2.MethodKeccak256UTF8 {
				content, err = shared.CanonicalJSON(json.RawMessage(content))
				if err != nil {
					return err
				}
			}

			encoded, err := lsp2.EncodeVerifiableURIBytes(content, method, url)
			if err != nil {
				return err
			}
			app.logger.Debug(
				"encoded verifiable uri",
				zap.String("method", method.Name),
				zap.Int("content_bytes", len(content)),
				zap.String("url", url),
			)
			app.println(shared.EncodeHex(encoded))
			return nil
		},
	}
	encodeCmd.Flags().StringVar(&url, "url", "", "Locator of the hosted content")
	encodeCmd.Flags().StringVar(&file, "file", "", "Path of the content to hash")
	encodeCmd.Flags().StringVar(&document, "json", "", "Inline JSON document")
	encodeCmd.Flags().StringVar(&methodName, "method", lsp2.MethodKeccak256UTF8.Name, "Verification method")
	_ = encodeCmd.MarkFlagRequired("url")
	command.AddCommand(encodeCmd)

	command.AddCommand(&cobra.Command{
		Use:   "decode <hex>",
		Short: "Print the method, hash and url of a VerifiableURI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := lsp2.DecodeVerifiableURI(args[0])
			if err != nil {
				return err
			}
			app.println(
				"method: "+decoded.Method.Name,
				"hash: "+decoded.HashHex(),
				"url: "+decoded.URL,
			)
			return nil
		},
	})
	return command
}

// readContent returns the bytes of file, or document when no file is set.
func readContent(file string, document string) ([]byte, error) {
	if strings.TrimSpace(file) != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		return content, nil
	}
	if strings.TrimSpace(document) == "" {
		return nil, fmt.Errorf("either --file or --json is required")
	}
	return []byte(document), nil
}
