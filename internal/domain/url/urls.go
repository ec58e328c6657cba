// Package url provides URL helpers for registered sites.
package url

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoHost is returned for URLs that parse but carry no host.
var ErrNoHost = errors.New("url has no host")

// Hostname extracts the host name (without port) from an absolute URL.
func Hostname(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", err
	}
	if u.Hostname() == "" {
		return "", ErrNoHost
	}
	return u.Hostname(), nil
}

// IsAbsolute returns true if rawURL has a scheme and a host.
func IsAbsolute(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// SuggestTitle derives a display name from the first host label,
// e.g. "https://www.github.com/x" -> "Github".
func SuggestTitle(rawURL string) (string, bool) {
	host, err := Hostname(rawURL)
	if err != nil {
		return "", false
	}
	host = strings.Replace(host, "www.", "", 1)
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return "", false
	}

	r, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(r)) + label[size:], true
}
