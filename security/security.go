package security

import (
	"mime"
	"net/http"
)

var sensitiveHeaders = []string{
	"Authorization",
	"Cookie",
	"Set-Cookie",
	"X-CSRF-Token",
}

// ValidateContentType reports whether the request body is declared as JSON.
// Media type parameters such as charset are ignored.
func ValidateContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

// SanitizeHeaders returns a copy of headers with credentials removed, safe to
// write to logs.
func SanitizeHeaders(headers http.Header) http.Header {
	out := headers.Clone()
	for _, header := range sensitiveHeaders {
		out.Del(header)
	}
	return out
}
