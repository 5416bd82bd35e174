package pricesparser

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kcbailey111/AffordRX/logging"
)

// FetchDataset downloads a feed file into the data directory. The scraper
// publishes plain CSV, so the body is written through unchanged; charset
// handling happens at parse time.
func FetchDataset(url, dataDir, fileName string) error {
	dest := filepath.Join(dataDir, fileName)
	cleanDest := filepath.Clean(dest)
	if !strings.HasPrefix(cleanDest, filepath.Clean(dataDir)+string(os.PathSeparator)) {
		return fmt.Errorf("invalid destination path: %s", dest)
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	response, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer func() {
		if err := response.Body.Close(); err != nil {
			logging.Warn("Failed to close response body", "error", err)
		}
	}()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d downloading %s", response.StatusCode, url)
	}

	out, err := os.Create(cleanDest)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", cleanDest, err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			logging.Warn("Failed to close output file", "error", err)
		}
	}()

	n, err := io.Copy(out, response.Body)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", cleanDest, err)
	}

	logging.Info("Feed file downloaded", "file", fileName, "bytes", n)
	return nil
}
