//go:build !(rp2040 || rp2350)

package platform

import (
	"io"
	"os"

	"qrlabel-go/types"
)

// Console returns the runtime's standard output.
func Console(types.ConsoleConfig) io.Writer { return os.Stdout }
