package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"filedrop/internal/client/api"
	"filedrop/internal/common"
	"filedrop/internal/filex"
)

// SetCode normalizes and stores a download code. An empty argument prompts
// interactively.
func (a *App) SetCode(raw string) {
	if raw == "" {
		var err error
		raw, err = GetSimpleText(a.reader, "Download code", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "no code entered")
			return
		}
	}

	a.state.SetCode(raw)
	if a.state.Code == "" {
		fmt.Fprintln(a.out, "code is empty after normalization")
		return
	}
	fmt.Fprintln(a.out, "code set to", a.state.Code)
}

// Info looks up file details for the current code and renders them.
func (a *App) Info(ctx context.Context) {
	if a.state.Code == "" {
		a.state.InfoFailed(common.ErrEmptyCode.Error())
		a.printBanner()
		return
	}
	if !a.state.Begin() {
		fmt.Fprintln(a.out, common.ErrBusy.Error())
		return
	}

	info, err := a.client.Info(ctx, a.state.Code)
	if err != nil {
		a.state.InfoFailed(errorMessage(err))
		a.printBanner()
		return
	}

	a.state.InfoSucceeded(info)
	a.renderInfo(info)
}

// renderInfo prints the lookup result. An exhausted countdown renders as
// "Expired"; the stored value itself is never rejected.
func (a *App) renderInfo(info *api.FileInfo) {
	remaining := "Expired"
	if info.TimeRemaining > 0 {
		remaining = fmt.Sprintf("%ds left", int(info.TimeRemaining))
	}
	fmt.Fprintf(a.out, "  %s — %d bytes, %s\n", info.OriginalName, info.FileSize, info.ContentType)
	fmt.Fprintf(a.out, "  expires %s (%s)\n", info.ExpiresAt.Format("15:04:05"), remaining)
}

// Download retrieves the file for the current code and saves it under the
// resolved filename in dir (the configured download directory when empty).
// The code and FileInfo are kept on failure so the user can retry.
func (a *App) Download(ctx context.Context, dir string) {
	if a.state.Code == "" {
		a.state.DownloadFailed(common.ErrEmptyCode.Error())
		a.printBanner()
		return
	}
	if !a.state.Begin() {
		fmt.Fprintln(a.out, common.ErrBusy.Error())
		return
	}
	if dir == "" {
		dir = a.config.DownloadDir
	}

	res, err := a.client.Download(ctx, a.state.Code)
	if err != nil {
		a.state.DownloadFailed(errorMessage(err))
		a.printBanner()
		return
	}
	defer res.Body.Close()

	// Base strips any path components a hostile header could smuggle in.
	name := filepath.Base(a.state.DownloadName(res.Filename))

	target, err := a.saveBody(dir, name, res.Body)
	if err != nil {
		a.state.DownloadFailed(err.Error())
		a.printBanner()
		return
	}

	a.state.DownloadSucceeded(target)
	a.printBanner()
}

// saveBody streams body into a temporary .part file in dir and renames it
// to a collision-free target on success.
func (a *App) saveBody(dir, name string, body io.Reader) (string, error) {
	absDir, err := filex.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("cannot prepare download directory: %w", err)
	}

	tmp := filex.TempPartPath(absDir)
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("cannot create file: %w", err)
	}

	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("transfer interrupted: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("cannot finish file: %w", err)
	}

	target := filex.UniqueTarget(absDir, name)
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("cannot move file into place: %w", err)
	}
	return target, nil
}
