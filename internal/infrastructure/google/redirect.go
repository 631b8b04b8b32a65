package google

import (
	"net/url"
	"strings"
)

// ExtractRealURL unwraps Google redirect links (google.com/url?url=...)
// to the destination URL. The url parameter is sometimes double-encoded,
// so decoding is applied twice when escape sequences survive the first
// pass. Non-redirect links are returned unchanged.
func ExtractRealURL(link string) string {
	if !strings.Contains(strings.ToLower(link), "google.com/url") {
		return link
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}

	target := parsed.Query().Get("url")
	if target == "" {
		// Some redirect variants use q instead of url
		target = parsed.Query().Get("q")
	}
	if target == "" {
		return link
	}

	if decoded, err := url.QueryUnescape(target); err == nil {
		target = decoded
		if strings.Contains(target, "%") {
			if decoded, err := url.QueryUnescape(target); err == nil {
				target = decoded
			}
		}
	}

	return target
}
