package postprocess

import (
	"fmt"

	"github.com/glaemscribe/glaemscribe-go/core"
)

// Diagnostic is a non-fatal finding surfaced by a post-processor stage:
// an unresolved charset name, a virtual that survives resolution, or a
// token with no code point. Stages never abort on one of these; they
// record it and carry on, matching spec's runtime-warning error class.
type Diagnostic struct {
	Code    int
	Message string
}

func (d Diagnostic) Error() string {
	return d.Message
}

func warn(format string, v ...interface{}) Diagnostic {
	return Diagnostic{Code: core.ERUNTIME, Message: fmt.Sprintf(format, v...)}
}
