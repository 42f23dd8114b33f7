package transport

import (
	"net/url"
	"strings"
)

// Endpoint reduces a request URL to a low-cardinality label: the last
// resource name of the path, with numeric or URN ids collapsed to ":id".
//
//	https://api.linkedin.com/v2/shares/6512345 -> "shares/:id"
//	https://api.linkedin.com/v2/me?projection=(id) -> "me"
//	https://www.linkedin.com/oauth/v2/accessToken?code=... -> "accessToken"
func Endpoint(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if !isID(parts[i]) {
			if i < len(parts)-1 {
				return parts[i] + "/:id"
			}
			return parts[i]
		}
	}
	return "unknown"
}

func isID(seg string) bool {
	if seg == "" {
		return true
	}
	if strings.HasPrefix(seg, "urn:") {
		return true
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
