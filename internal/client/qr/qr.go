// Package qr models the optional QR convenience channel: rendering a
// download URL as a scannable image and recovering a code from a scanned
// image. Both sit behind capability interfaces with no-op fallbacks, so the
// core upload/download flow never depends on their presence.
package qr

import (
	"errors"
	"io"
	"regexp"
)

// ErrUnavailable is returned by the no-op implementations.
var ErrUnavailable = errors.New("qr support unavailable")

// Renderer writes a scannable image of url to w.
type Renderer interface {
	Render(url string, w io.Writer) error
}

// Scanner decodes the QR image in the file at path and returns its text.
type Scanner interface {
	Scan(path string) (string, error)
}

type NopRenderer struct{}

func (NopRenderer) Render(string, io.Writer) error { return ErrUnavailable }

type NopScanner struct{}

func (NopScanner) Scan(string) (string, error) { return "", ErrUnavailable }

var downloadURLPattern = regexp.MustCompile(`/download/([A-Z0-9]+)`)

// ExtractCode pulls the download code out of scanned text: either from a
// direct-download URL, or, when the text is not such a URL, the text itself
// is treated as the candidate code.
func ExtractCode(text string) string {
	if m := downloadURLPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}
