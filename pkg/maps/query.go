package maps

import "strings"

// query is an ordered list of URL parameters. Static Maps parameters are
// order-sensitive for readability and caching, so url.Values (which sorts) is
// not used here.
type query struct {
	pairs [][2]string
}

func (q *query) add(key, value string) {
	q.pairs = append(q.pairs, [2]string{key, value})
}

func (q query) encode() string {
	var b strings.Builder
	for idx, pair := range q.pairs {
		if idx > 0 {
			b.WriteByte('&')
		}
		b.WriteString(QueryEscape(pair[0]))
		b.WriteByte('=')
		b.WriteString(QueryEscape(pair[1]))
	}
	return b.String()
}

// QueryEscape escapes s for a query string like url.QueryEscape but leaves
// the Static Maps delimiters "|", "," and ":" readable.
func QueryEscape(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		switch {
		case isUnreserved(c), c == '|', c == ',', c == ':':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}

func joinPipe(values []string) string {
	return strings.Join(values, "|")
}
