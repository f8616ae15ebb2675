package main

import (
	"github.com/lukso-network/lsp-utils-go/pkg/lsp2"
	"github.com/lukso-network/lsp-utils-go/pkg/lsp6"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (app *cli) compactCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "compact",
		Short: "CompactBytesArray codec",
	}
	command.AddCommand(&cobra.Command{
		Use:   "encode <hex>...",
		Short: "Encode hex elements of 1 to 32 bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := lsp2.EncodeCompactBytesArray(args)
			if err != nil {
				return err
			}
			app.logger.Debug("encoded compact bytes array", zap.Int("elements", len(args)))
			app.println(encoded)
			return nil
		},
	})
	command.AddCommand(&cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a CompactBytesArray into one element per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := lsp2.DecodeCompactBytesArray(args[0])
			if err != nil {
				return err
			}
			app.logger.Debug("decoded compact bytes array", zap.Int("elements", len(elements)))
			app.println(elements...)
			return nil
		},
	})
	return command
}

func (app *cli) allowedKeysCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "allowed-keys",
		Short: "LSP6 AllowedERC725YDataKeys codec",
	}
	command.AddCommand(&cobra.Command{
		Use:   "encode <data key>...",
		Short: "Encode data keys or data key prefixes",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := lsp6.EncodeAllowedERC725YDataKeys(args)
			if err != nil {
				return err
			}
			app.logger.Debug("encoded allowed data keys", zap.Int("keys", len(args)))
			app.println(encoded)
			return nil
		},
	})
	command.AddCommand(&cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode an AllowedERC725YDataKeys value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataKeys, err := lsp6.DecodeAllowedERC725YDataKeys(args[0])
			if err != nil {
				return err
			}
			app.println(dataKeys...)
			return nil
		},
	})
	return command
}
