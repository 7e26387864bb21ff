package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"filedrop/internal/common"
)

// Download retrieves the file for code via POST /download with a JSON body
// {"code": CODE}. On success the returned body streams the payload; the
// server deletes the stored file after the first successful retrieval, so a
// code is effectively single-use.
func (c *HTTPClient) Download(ctx context.Context, code string) (*DownloadResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, common.ErrEmptyCode
	}

	payload, err := json.Marshal(downloadRequest{Code: code})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/download"), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, c.errorFromResponse("download", resp)
	}

	result := &DownloadResult{
		Filename:    FilenameFromDisposition(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}

	c.log.Info(ctx, "download started", "code", code, "filename", result.Filename)
	return result, nil
}
