package constants

import "strings"

// MaxUploadBytes is the hard ceiling on uploaded document size.
const MaxUploadBytes = 10 << 20 // 10 MiB

// AllowedContentTypes holds the accepted MIME types for scan uploads.
var AllowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"text/plain":      {},
}

// ContentTypeAllowed reports whether ct (possibly carrying parameters,
// e.g. "text/plain; charset=utf-8") is accepted for upload.
func ContentTypeAllowed(ct string) bool {
	base := strings.TrimSpace(strings.ToLower(ct))
	if i := strings.IndexByte(base, ';'); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	_, ok := AllowedContentTypes[base]
	return ok
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
