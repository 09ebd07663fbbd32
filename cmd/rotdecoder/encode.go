package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/rotdecoder"
	"go.uber.org/zap"
)

var EncodeCmd = Command(encodeRunE,
	"encode <plaintext>",
	"Obfuscate a plaintext message into the form accepted by decode",
	ExactArgs(1),
	Flags(func(flags *pflag.FlagSet) {
		flags.String("compression", "none", "compress the plaintext before obfuscating it, use 'zstd' or 'none'. Decode with '--renderer zstd'")
	}),
)

func encodeRunE(cmd *cobra.Command, args []string) error {
	compressor, err := rotdecoder.NewCompressor(viper.GetString("encode-compression"))
	if err != nil {
		return fmt.Errorf("compressor: %w", err)
	}

	plaintext := args[0]
	zlog.Info("encoding plaintext",
		zap.Int("length", len(plaintext)),
		zap.String("compression", viper.GetString("encode-compression")),
	)

	fmt.Fprintln(cmd.OutOrStdout(), rotdecoder.Encode(compressor.Compress([]byte(plaintext))))
	return nil
}
