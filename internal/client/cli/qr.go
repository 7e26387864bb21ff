package cli

import (
	"errors"
	"fmt"

	"filedrop/internal/client/qr"
)

// ShowQR renders the direct-download URL of the last upload as a QR code.
func (a *App) ShowQR() {
	if a.state.LastUpload == nil {
		fmt.Fprintln(a.out, "nothing uploaded yet")
		return
	}

	url := a.client.DirectDownloadURL(a.state.LastUpload.Code)
	fmt.Fprintln(a.out, url)

	if err := a.renderer.Render(url, a.out); err != nil {
		if !errors.Is(err, qr.ErrUnavailable) {
			fmt.Fprintln(a.out, "cannot render QR code:", err)
		}
	}
}

// ScanImage reads a QR image file and adopts the code it carries, whether
// the payload is a direct-download URL or a bare code.
func (a *App) ScanImage(path string) {
	text, err := a.scanner.Scan(path)
	if err != nil {
		fmt.Fprintln(a.out, "scan failed:", err)
		return
	}
	a.SetCode(qr.ExtractCode(text))
}
