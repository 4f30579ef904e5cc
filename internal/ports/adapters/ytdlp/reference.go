package ytdlp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ValidateReference accepts bare video references (IDs, extractor-prefixed
// references) as-is. Anything carrying a URL scheme must be an absolute
// http(s) URL with a host and no userinfo.
func ValidateReference(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errors.New("video reference is empty")
	}
	if !strings.Contains(ref, "://") {
		return nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return fmt.Errorf("invalid video URL: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("invalid video URL %q: http or https is required", ref)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid video URL %q: host is required", ref)
	}
	if u.User != nil {
		return fmt.Errorf("invalid video URL %q: userinfo is not allowed", ref)
	}
	return nil
}
