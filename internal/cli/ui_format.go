// Formatting delegates kept for convenience within the CLI package.

package cli

import (
	"time"

	"github.com/agbru/fibseq/internal/format"
)

// FormatExecutionDuration delegates to format.FormatExecutionDuration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}
