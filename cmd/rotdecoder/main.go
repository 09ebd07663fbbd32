package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/logging"
)

// Commit sha1 value, injected via go build `ldflags` at build time
var commit = ""

// Version value, injected via go build `ldflags` at build time
var version = "dev"

// Date value, injected via go build `ldflags` at build time
var date = ""

var zlog, tracer = logging.RootLogger("rotdecoder", "github.com/streamingfast/rotdecoder/cmd/rotdecoder")

func init() {
	logging.InstantiateLoggers()
}

func main() {
	Run("rotdecoder", "Reverses the rotation applied to an obfuscated hex string and decodes it to text",
		ConfigureViper("ROTDECODER"),
		ConfigureVersion(),

		DecodeCmd,
		EncodeCmd,

		PersistentFlags(
			func(flags *pflag.FlagSet) {
				flags.String("renderer", "text", "how decoded bytes are printed. Supported schemes: 'text', 'utf8', 'hex', 'base58', 'zstd', 'proto:///path/to/file.proto@<full_qualified_message_type>'")
				flags.Bool("strict", false, "reject input characters that are neither lowercase letters nor digits instead of passing them through")
			},
		),
		AfterAllHook(func(cmd *cobra.Command) {
			cmd.Args = cobra.NoArgs
			cmd.RunE = sessionRunE
		}),
	)
}

func ConfigureVersion() CommandOption {
	return CommandOptionFunc(func(cmd *cobra.Command) {
		cmd.Version = versionString(version)
	})
}

func versionString(version string) string {
	var labels []string
	if len(commit) >= 7 {
		labels = append(labels, fmt.Sprintf("Commit %s", commit[0:7]))
	}

	if date != "" {
		labels = append(labels, fmt.Sprintf("Built %s", date))
	}

	if len(labels) == 0 {
		return version
	}

	return fmt.Sprintf("%s (%s)", version, strings.Join(labels, ", "))
}
