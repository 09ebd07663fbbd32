package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/rotdecoder"
	"go.uber.org/zap"
)

var DecodeCmd = Command(decodeRunE,
	"decode <encoded>",
	"Decode an obfuscated string given as argument, without prompting",
	ExactArgs(1),
)

func decodeRunE(cmd *cobra.Command, args []string) error {
	renderer, err := getRenderer()
	if err != nil {
		return err
	}

	encoded := args[0]
	zlog.Info("decoding input", zap.String("encoded", encoded))

	out := cmd.OutOrStdout()
	result, err := rotdecoder.Decode(encoded, getDecodeOptions()...)

	var decodeErr *rotdecoder.DecodeError
	if err != nil && !errors.As(err, &decodeErr) {
		zlog.Warn("input rejected", zap.Error(err))
		fmt.Fprintf(out, "Message\t->\t%s\n", rotdecoder.MessageDecodingFailed)
		return nil
	}

	fmt.Fprintf(out, "Hex\t->\t%s\n", result.Intermediate)
	if err != nil {
		zlog.Warn("unable to decode hex string", zap.String("hex", result.Intermediate), zap.Error(err))
		fmt.Fprintf(out, "Message\t->\t%s\n", rotdecoder.ErrorMessage(err))
		return nil
	}

	fmt.Fprintf(out, "Message\t->\t%s\n", renderer.Render(result.Decoded))
	return nil
}
