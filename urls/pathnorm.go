package urls

import (
	"strings"

	"github.com/textsift/urlsift/charutil"
)

// normalizePath canonicalizes a path: tabs and newlines are stripped,
// escapes are decoded to a fixed point, dot segments are resolved, and the
// result is re-encoded.
func normalizePath(path string) string {
	if path == "" {
		return path
	}
	path = charutil.StripSpecialSpaces(path)
	path = decode(path)
	path = removeDotSegments(path)
	return encode(path)
}

// removeDotSegments resolves "." and ".." segments against a segment stack.
// Empty segments collapse, so "/a/b/.//./../c" resolves to "/a/c". ".." at
// the root is dropped rather than kept.
func removeDotSegments(path string) string {
	if !strings.Contains(path, "/") {
		return path
	}
	segments := strings.Split(path, "/")
	stack := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "", ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, segment)
		}
	}

	var b strings.Builder
	b.Grow(len(path))
	if strings.HasPrefix(path, "/") {
		b.WriteString("/")
	}
	b.WriteString(strings.Join(stack, "/"))

	// A trailing "/", "/." or "/.." keeps the result directory-shaped.
	last := segments[len(segments)-1]
	if len(stack) > 0 && (last == "" || last == "." || last == "..") {
		b.WriteString("/")
	}
	return b.String()
}
