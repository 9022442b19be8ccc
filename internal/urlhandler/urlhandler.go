package urlhandler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL normalizes a URL string, ensuring it has a scheme, a hostname,
// and no surrounding whitespace.
func NormalizeURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", errors.New("URL is empty or only whitespace")
	}

	if !strings.Contains(trimmed, "://") && !strings.HasPrefix(trimmed, "//") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("could not parse URL '%s': %w", trimmed, err)
	}
	if parsed.Host == "" {
		return "", errors.New("URL lacks a valid hostname")
	}

	return parsed.String(), nil
}

// ValidateURLFormat checks that a string is a usable absolute URL.
func ValidateURLFormat(rawURL string) error {
	_, err := NormalizeURL(rawURL)
	return err
}

// ResolveURL resolves a (possibly relative) href against a base URL and
// normalizes the result.
func ResolveURL(href string, base *url.URL) (string, error) {
	trimmed := strings.TrimSpace(href)
	if trimmed == "" {
		return "", errors.New("href is empty")
	}

	if base == nil {
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return "", fmt.Errorf("error parsing base-less href '%s': %w", trimmed, err)
		}
		if !parsed.IsAbs() {
			return "", fmt.Errorf("cannot resolve relative URL '%s' without a base URL", trimmed)
		}
		return NormalizeURL(parsed.String())
	}

	resolved, err := base.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("error resolving href '%s' with base '%s': %w", trimmed, base.String(), err)
	}
	return NormalizeURL(resolved.String())
}

// SiteDisplayName derives a human-readable site name from a page URL, used in
// notification titles. "https://www.pokemoncenter.com/en-ca/..." becomes
// "pokemoncenter.com".
func SiteDisplayName(pageURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || parsed.Host == "" {
		return pageURL
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}
