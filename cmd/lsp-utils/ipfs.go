package main

import (
	"github.com/lukso-network/lsp-utils-go/pkg/ipfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (app *cli) ipfsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "ipfs",
		Short: "IPFS locator helpers",
	}
	command.AddCommand(&cobra.Command{
		Use:   "resolve <url>",
		Short: "Rewrite an ipfs:// locator to the configured gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway := app.config.GetString(configKeyGateway)
			resolved, err := ipfs.ValidateIPFSURL(args[0], gateway)
			if err != nil {
				return err
			}
			app.logger.Debug("resolved ipfs url", zap.String("gateway", gateway), zap.String("url", resolved))
			app.println(resolved)
			return nil
		},
	})

	var (
		file     string
		document string
	)
	cidCmd := &cobra.Command{
		Use:   "cid",
		Short: "Print the ipfs:// locator of a file or inline document",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(file, document)
			if err != nil {
				return err
			}
			url, err := ipfs.ContentURL(content)
			if err != nil {
				return err
			}
			app.println(url)
			return nil
		},
	}
	cidCmd.Flags().StringVar(&file, "file", "", "Path of the content")
	cidCmd.Flags().StringVar(&document, "json", "", "Inline content")
	command.AddCommand(cidCmd)
	return command
}
