package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	apperrors "medinsight/internal/errors"
)

// defaultFetchTimeout bounds a dataset download when the caller's context
// carries no deadline of its own.
const defaultFetchTimeout = 2 * time.Minute

// Fetch downloads the dataset from url into dest and returns the number of
// bytes written. Any failure aborts the run; there are no retries.
func Fetch(ctx context.Context, url, dest string) (int64, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultFetchTimeout)
		defer cancel()
	}

	slog.InfoContext(ctx, "downloading dataset",
		slog.String("url", url),
		slog.String("dest", dest))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, apperrors.NewFetchError("build dataset request", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, apperrors.NewFetchError("download dataset", err).WithContext("url", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, apperrors.NewFetchError(
			fmt.Sprintf("unexpected status %s", resp.Status), nil).WithContext("url", url)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, apperrors.NewStorageError("create download directory", err)
	}

	file, err := os.Create(dest)
	if err != nil {
		return 0, apperrors.NewStorageError("create dataset file", err)
	}
	defer file.Close()

	size, err := io.Copy(file, resp.Body)
	if err != nil {
		return 0, apperrors.NewFetchError("write dataset file", err)
	}

	slog.InfoContext(ctx, "dataset downloaded",
		slog.String("dest", dest),
		slog.Int64("bytes", size))

	return size, nil
}
