package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"https korunur", "https://example.com", "https://example.com"},
		{"http korunur", "http://example.com", "http://example.com"},
		{"şemasıza https eklenir", "example.com", "https://example.com"},
		{"boşluklar kırpılır", "  https://example.com  ", "https://example.com"},
		{"javascript engellenir", "javascript:alert(1)", ""},
		{"büyük harfli javascript engellenir", "JAVASCRIPT:alert(1)", ""},
		{"data engellenir", "data:text/html;base64,xxx", ""},
		{"vbscript engellenir", "vbscript:msgbox(1)", ""},
		{"boş girdi boş kalır", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeURL(tc.in))
		})
	}
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://example.com/yol?x=1"))
	assert.True(t, IsValidURL("http://example.com"))
	assert.False(t, IsValidURL("ftp://example.com"))
	assert.False(t, IsValidURL("https://"))
	assert.False(t, IsValidURL("alakasız metin"))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("kul_lanici-1"))
	assert.True(t, IsValidUsername("abc"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("nokta.li"))
	assert.False(t, IsValidUsername("boşluk var"))
	assert.False(t, IsValidUsername("cokuzunkullaniciadi123456789012"))
}
