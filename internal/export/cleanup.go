package export

import (
	"os"

	"github.com/theirongolddev/habitrack/internal/logger"
)

// removeImages deletes every temporary image and then their directory.
// Failures are logged and skipped. It returns the number of files removed.
func removeImages(log *logger.Console, dir string, paths []string) int {
	removed := 0
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			if !os.IsNotExist(err) {
				log.Warnf("Could not remove %s: %v", p, err)
			}
			continue
		}
		removed++
	}

	if dir != "" {
		if err := os.Remove(dir); err != nil && !os.IsNotExist(err) {
			log.Warnf("Could not remove %s: %v", dir, err)
		}
	}
	return removed
}
