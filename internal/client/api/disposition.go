package api

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultFilename is used when the Content-Disposition header is absent or
// yields no usable name.
const DefaultFilename = "download"

var (
	// filename= with a quoted or bare value, terminated by ';' or end of
	// header. Must not match the filename*= extended form.
	plainFilenameRe = regexp.MustCompile(`(?i)filename\s*=\s*(?:"([^"]*)"|([^;]+))`)

	// RFC 5987 extended form: filename*=UTF-8''percent-encoded-value.
	extFilenameRe = regexp.MustCompile(`(?i)filename\*\s*=\s*utf-8''([^;]+)`)
)

// FilenameFromDisposition extracts the server-suggested filename from a
// Content-Disposition header value.
//
// Precedence:
//  1. plain filename= parameter (quotes stripped, percent-decoded);
//  2. the RFC 5987 filename*=UTF-8'' form (percent-decoded);
//  3. DefaultFilename.
//
// A candidate that is empty after decoding, or that fails to decode, falls
// through to the next step.
func FilenameFromDisposition(header string) string {
	if m := plainFilenameRe.FindStringSubmatch(header); m != nil {
		v := m[1]
		if v == "" {
			v = strings.TrimSpace(m[2])
		}
		if decoded, err := url.PathUnescape(v); err == nil && decoded != "" {
			return decoded
		}
	}

	if m := extFilenameRe.FindStringSubmatch(header); m != nil {
		v := strings.TrimSpace(m[1])
		if decoded, err := url.PathUnescape(v); err == nil && decoded != "" {
			return decoded
		}
	}

	return DefaultFilename
}
