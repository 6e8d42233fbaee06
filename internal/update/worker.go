package update

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/lexget/lexidict/internal/model"
)

// Download constants
const (
	chunkSize    = 8 * 1024
	taskIDPrefix = "update-"

	artifactFilePermissions = 0o755
)

// worker streams one artifact to disk on its own goroutine. A worker is
// single use: construct a new one per attempt. Task fields are mutated only
// on the worker goroutine; observers receive read-only snapshots through the
// callbacks, which fire on that goroutine in order, the terminal callback
// strictly last and exactly once.
type worker struct {
	task   *model.UpdateTask
	fs     afero.Fs
	http   *http.Client
	logger *log.Logger

	onProgress func(percent int)
	onStatus   func(message string)
	onComplete func()
}

func newWorker(url, destPath string, fs afero.Fs, logger *log.Logger) *worker {
	return &worker{
		task: &model.UpdateTask{
			ID:       generateTaskID(),
			URL:      url,
			DestPath: destPath,
			Status:   model.TaskStatusPending,
		},
		fs:     fs,
		http:   http.DefaultClient,
		logger: logger,
	}
}

// start launches the transfer in the background and returns immediately.
func (w *worker) start() {
	w.task.Status = model.TaskStatusStarting
	go w.download()
}

func (w *worker) download() {
	w.logger.Info("starting update download", "url", w.task.URL, "dest", w.task.DestPath)
	w.task.StartedAt = time.Now()
	w.task.Status = model.TaskStatusDownloading

	resp, err := w.http.Get(w.task.URL)
	if err != nil {
		w.fail(fmt.Sprintf("network error: %v", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		w.fail(fmt.Sprintf("unexpected status: %s", resp.Status))
		return
	}

	// A zero or unknown content length would complete at 0% progress.
	if resp.ContentLength <= 0 {
		w.fail("no content received")
		return
	}
	w.task.TotalBytes = resp.ContentLength

	out, err := w.fs.OpenFile(w.task.DestPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, artifactFilePermissions)
	if err != nil {
		w.fail(fmt.Sprintf("cannot create %s: %v", w.task.DestPath, err))
		return
	}
	defer out.Close()

	buf := make([]byte, chunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				w.fail(fmt.Sprintf("write failed: %v", writeErr))
				return
			}
			w.task.BytesReceived += int64(n)
			w.task.Percent = int(w.task.BytesReceived * 100 / w.task.TotalBytes)
			if w.onProgress != nil {
				w.onProgress(w.task.Percent)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			w.fail(fmt.Sprintf("network error: %v", readErr))
			return
		}
	}

	w.task.Status = model.TaskStatusCompleted
	w.task.FinishedAt = time.Now()
	w.logger.Info("update download complete", "path", w.task.DestPath)
	if w.onComplete != nil {
		w.onComplete()
	}
}

// fail records the terminal error state and notifies observers through the
// status channel. The worker never raises past its own boundary.
func (w *worker) fail(message string) {
	w.task.Status = model.TaskStatusError
	w.task.LastError = message
	w.task.FinishedAt = time.Now()
	w.logger.Error("update failed", "error", message)
	if w.onStatus != nil {
		w.onStatus("Update failed: " + message)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(taskIDPrefix+"%d", time.Now().UnixNano())
	}
	return taskIDPrefix + id.String()
}
