package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"filedrop/internal/common"
)

// progressReader wraps the outgoing request body and reports cumulative
// bytes sent after every read. The transport drives the callback cadence,
// so deliveries are not assumed strictly monotonic by consumers.
type progressReader struct {
	r     io.Reader
	total int64
	sent  int64
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.fn != nil {
			p.fn(p.sent, p.total)
		}
	}
	return n, err
}

// Upload sends content as multipart form data under the "file" field to
// POST /upload. The payload is read fully up front: the 50 MiB ceiling is
// checked before any network traffic, and the exact body size gives the
// progress callback a stable total-byte denominator.
func (c *HTTPClient) Upload(ctx context.Context, name string, content io.Reader, onProgress ProgressFunc) (*UploadResult, error) {
	payload, err := io.ReadAll(io.LimitReader(content, common.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if int64(len(payload)) > common.MaxFileSize {
		return nil, common.ErrFileTooLarge
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(common.UploadFieldName, name)
	if err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}

	total := int64(body.Len())
	pr := &progressReader{r: &body, total: total, fn: onProgress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/upload"), pr)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.ContentLength = total

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFromResponse("upload", resp)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidResponse, err)
	}

	c.log.Info(ctx, "upload complete", "code", result.Code, "size", result.FileSize)
	return &result, nil
}
