package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	dangerousSchemeRegex = regexp.MustCompile(`(?i)^(javascript|data|vbscript):`)
	usernameRegex        = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)
)

// SanitizeURL kullanıcı girdisi URL'leri XSS'e karşı temizler.
// javascript:/data:/vbscript: şemaları boş string'e çevrilir; boş string
// sonrasında "url zorunludur" validasyonuna takılır. Şema verilmemişse
// https:// öne eklenir.
func SanitizeURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}
	if dangerousSchemeRegex.MatchString(trimmed) {
		return ""
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	return trimmed
}

// IsValidURL temizlenmiş URL'in parse edilebilir ve host içeren bir
// http(s) adresi olduğunu doğrular.
func IsValidURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// IsValidUsername kullanıcı adının 3-30 karakter arası harf, rakam,
// tire ve alt çizgiden oluştuğunu kontrol eder.
func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
