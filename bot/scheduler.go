package bot

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"embedbot/scraper/svg"
	"embedbot/utils"
)

var c *cron.Cron

// startScheduler starts the cron jobs.
func startScheduler() {
	c = cron.New()
	_, err := c.AddFunc("@hourly", sweepTempFiles)
	if err != nil {
		utils.Logger().Fatalf("Could not set up cron job: %v", err)
	}
	c.Start()

	// clean up strays a previous process may have left behind
	go sweepTempFiles()
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
	}
}

// sweepTempFiles removes rasterized images that outlived their render,
// which can happen when the process dies between rasterize and cleanup.
func sweepTempFiles() {
	dir := svg.TempDir()
	if dir == "" {
		dir = os.TempDir()
	}

	matches, err := filepath.Glob(filepath.Join(dir, svg.TempFilePattern))
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-time.Hour)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err == nil {
			utils.Logger().WithField("file", path).Info("removed stale temp file")
		}
	}
}
