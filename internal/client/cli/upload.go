package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"filedrop/internal/common"
)

// SelectFile validates and records a local file choice. An empty path
// prompts interactively.
func (a *App) SelectFile(path string) {
	if path == "" {
		var err error
		path, err = GetSimpleText(a.reader, "Path to file", a.out)
		if err != nil || path == "" {
			fmt.Fprintln(a.out, "no file selected")
			return
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintln(a.out, "cannot read file:", err)
		return
	}
	if info.IsDir() {
		fmt.Fprintln(a.out, path, "is a directory")
		return
	}

	if err := a.state.SelectFile(path, info.Size()); err != nil {
		a.printBanner()
		return
	}
	fmt.Fprintf(a.out, "selected %s (%d bytes)\n", path, info.Size())
}

// Upload sends the selected file and reports the resulting code. A second
// submission while one is in flight is refused before any network traffic.
func (a *App) Upload(ctx context.Context) {
	if a.state.FilePath == "" {
		a.state.UploadFailed(common.ErrNoFileSelected.Error())
		a.printBanner()
		return
	}
	if !a.state.Begin() {
		fmt.Fprintln(a.out, common.ErrBusy.Error())
		return
	}

	f, err := os.Open(a.state.FilePath)
	if err != nil {
		a.state.UploadFailed(fmt.Sprintf("cannot read file: %v", err))
		a.printBanner()
		return
	}
	defer f.Close()

	var bar *progressbar.ProgressBar
	onProgress := func(sent, total int64) {
		a.state.SetProgress(sent, total)
		if a.interactive {
			if bar == nil {
				bar = progressbar.DefaultBytes(total, "uploading")
			}
			_ = bar.Set64(sent)
		}
	}

	res, err := a.client.Upload(ctx, filepath.Base(a.state.FilePath), f, onProgress)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(a.out)
	}
	if err != nil {
		a.state.UploadFailed(errorMessage(err))
		a.printBanner()
		return
	}

	a.state.UploadSucceeded(res)
	a.printBanner()
	fmt.Fprintf(a.out, "share this code: %s (expires %s)\n",
		res.Code, res.ExpiresAt.Format(time.RFC1123))
}
