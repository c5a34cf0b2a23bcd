package handler

import (
	"regexp"
	"strings"
)

var (
	prefixedOrderID = regexp.MustCompile(`(?i)\b(ORD-?[0-9]{3,12})\b`)
	hashOrderID     = regexp.MustCompile(`#([0-9]{3,12})\b`)
	keywordOrderID  = regexp.MustCompile(`(?i)\border\b\s*(?:id|number|no\.?)?\s*[:#]?\s*([A-Za-z0-9-]*[0-9][A-Za-z0-9-]*)`)
)

const (
	minKeywordIDLen = 3
	maxKeywordIDLen = 20
)

// ExtractOrderID finds the order id in a free-text query. Forms are tried in
// order and the first match wins: ORD123 / ORD-123, #12345, then
// "order [id|number|no.] [:|#] <token with a digit>". The id is upper-cased.
func ExtractOrderID(query string) (string, bool) {
	if m := prefixedOrderID.FindStringSubmatch(query); m != nil {
		return strings.ToUpper(m[1]), true
	}
	if m := hashOrderID.FindStringSubmatch(query); m != nil {
		return m[1], true
	}
	for _, m := range keywordOrderID.FindAllStringSubmatch(query, -1) {
		if n := len(m[1]); n >= minKeywordIDLen && n <= maxKeywordIDLen {
			return strings.ToUpper(m[1]), true
		}
	}
	return "", false
}
