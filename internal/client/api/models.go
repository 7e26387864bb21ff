package api

import (
	"io"

	"filedrop/internal/timex"
)

// UploadResult is the server's answer to a successful upload. The code is
// the only handle to the stored file; it expires at ExpiresAt or on first
// successful download, whichever comes first.
type UploadResult struct {
	Code      string     `json:"code"`
	ExpiresAt timex.Time `json:"expires_at"`
	FileSize  int64      `json:"file_size"`
}

// FileInfo describes a stored file looked up by code. TimeRemaining is the
// server's own countdown in seconds; it may be zero or negative, which the
// caller renders as expired rather than treating as an error.
type FileInfo struct {
	OriginalName  string     `json:"original_name"`
	FileSize      int64      `json:"file_size"`
	ContentType   string     `json:"content_type"`
	ExpiresAt     timex.Time `json:"expires_at"`
	TimeRemaining float64    `json:"time_remaining"`
}

// DownloadResult carries the payload stream of a successful download.
// Filename is resolved from the Content-Disposition header and falls back
// to DefaultFilename when the header yields nothing usable. The caller owns
// Body and must close it.
type DownloadResult struct {
	Filename    string
	ContentType string
	Size        int64 // -1 when the server sent no Content-Length
	Body        io.ReadCloser
}

type downloadRequest struct {
	Code string `json:"code"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}
