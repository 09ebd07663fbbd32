package main

import (
	"github.com/spf13/cobra"
	"github.com/streamingfast/rotdecoder"
)

func sessionRunE(cmd *cobra.Command, args []string) error {
	renderer, err := getRenderer()
	if err != nil {
		return err
	}

	return rotdecoder.RunSession(cmd.InOrStdin(), cmd.OutOrStdout(), renderer, getDecodeOptions()...)
}
