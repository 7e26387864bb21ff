package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"filedrop/internal/common"
)

// Info fetches metadata for a stored file via GET /info/{CODE}. The code is
// uppercased before use. TimeRemaining is passed through as received, even
// when it is zero or negative.
func (c *HTTPClient) Info(ctx context.Context, code string) (*FileInfo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, common.ErrEmptyCode
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/info/"+code), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("info lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFromResponse("info lookup", resp)
	}

	var info FileInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidResponse, err)
	}

	c.log.Debug(ctx, "info lookup complete", "code", code, "name", info.OriginalName)
	return &info, nil
}
