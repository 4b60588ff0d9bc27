package widget

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fallbackPolicyOnce sync.Once
	fallbackPolicy     *bluemonday.Policy
)

func sanitizeFallback(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(fallbackSanitizer().Sanitize(trimmed))
}

func fallbackSanitizer() *bluemonday.Policy {
	fallbackPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("p", "br", "em", "strong", "b", "i", "span")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		fallbackPolicy = policy
	})
	return fallbackPolicy
}
