package focus

import "strings"

// UpdateElement replaces every occurrence of placeholder in blob. It is a
// no-op when the placeholder is absent.
func UpdateElement(blob *string, placeholder, replacement string) {
	if placeholder == "" {
		return
	}
	*blob = strings.ReplaceAll(*blob, placeholder, replacement)
}

// RemovePlaceholder deletes every occurrence of placeholder from blob. When
// the token is the only thing on its line, the whole line goes with it so the
// surrounding block keeps its shape.
func RemovePlaceholder(blob *string, placeholder string) {
	if placeholder == "" {
		return
	}
	s := *blob
	for {
		i := strings.Index(s, placeholder)
		if i < 0 {
			break
		}
		end := i + len(placeholder)
		lineStart := strings.LastIndexByte(s[:i], '\n')
		if lineStart >= 0 && strings.TrimSpace(s[lineStart+1:i]) == "" {
			s = s[:lineStart] + s[end:]
		} else {
			s = s[:i] + s[end:]
		}
	}
	*blob = s
}

// ReplaceToken is like UpdateElement but only replaces whole tokens: an
// occurrence directly followed by an identifier character is left alone, so
// replacing "$TARGET" never touches "$TARGETNAME".
func ReplaceToken(blob *string, token, replacement string) {
	if token == "" || !strings.Contains(*blob, token) {
		return
	}
	s := *blob
	var b strings.Builder
	for {
		i := strings.Index(s, token)
		if i < 0 {
			b.WriteString(s)
			break
		}
		end := i + len(token)
		b.WriteString(s[:i])
		if end < len(s) && isIdentByte(s[end]) {
			b.WriteString(token)
		} else {
			b.WriteString(replacement)
		}
		s = s[end:]
	}
	*blob = b.String()
}

func isIdentByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
