package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lukso-network/lsp-utils-go/pkg/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix        = "LSP"
	configKeyGateway = "ipfs.gateway"
)

type cli struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	debug      bool
	config     *viper.Viper
	logger     *zap.Logger
}

func newRootCommand(stdout io.Writer, stderr io.Writer) *cobra.Command {
	app := &cli{stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "lsp-utils",
		Short:         "Encode and decode LUKSO LSP data values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(app.configPath)
			if err != nil {
				return err
			}
			app.config = config
			app.logger = newLogger(app.debug, app.stderr)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.logger.Sync()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(app.compactCommand())
	rootCmd.AddCommand(app.allowedKeysCommand())
	rootCmd.AddCommand(app.verifiableURICommand())
	rootCmd.AddCommand(app.lsp4Command())
	rootCmd.AddCommand(app.ipfsCommand())
	return rootCmd
}

// loadConfig layers an optional YAML file over LSP_ prefixed environment
// variables. ipfs.gateway defaults to the .env aware gateway lookup.
func loadConfig(path string) (*viper.Viper, error) {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	config.SetDefault(configKeyGateway, shared.IPFSGatewayFromEnv())

	if strings.TrimSpace(path) == "" {
		return config, nil
	}
	config.SetConfigFile(path)
	config.SetConfigType("yaml")
	if err := config.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return config, nil
}

func newLogger(debug bool, output io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	level := zapcore.InfoLevel
	if debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(output), level)
	return zap.New(core).Named("lsp-utils")
}

func (app *cli) println(values ...string) {
	for _, value := range values {
		fmt.Fprintln(app.stdout, value)
	}
}
