package rotdecoder

import (
	"github.com/streamingfast/logging"
)

var zlog, _ = logging.PackageLogger("rotdecoder", "github.com/streamingfast/rotdecoder")
