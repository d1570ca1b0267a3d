//go:build !darwin && !linux && !windows

package utils

import (
	"fmt"
	"runtime"
)

// OpenBrowser reports that no browser launcher is known for this platform
func OpenBrowser(url string) error {
	return fmt.Errorf("can't open %s: no browser launcher for %s", url, runtime.GOOS)
}
