package rotdecoder

import "github.com/streamingfast/logging"

func init() {
	logging.TestingOverride()
}
