package services

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

var aliasRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

// reservedAliases пересекаются с маршрутами сервиса.
var reservedAliases = []string{"api", "admin", "health", "ping", "shorten", "stats", "static"}

// ValidateURL проверяет, является ли строка корректным http(s) URL.
func ValidateURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)

	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL format", ErrValidation)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: URL must have http or https scheme", ErrValidation)
	}

	if parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: URL must have a host", ErrValidation)
	}

	if parsedURL.Hostname() != "localhost" && !hostnameRegex.MatchString(parsedURL.Hostname()) {
		return nil, fmt.Errorf("%w: invalid hostname", ErrValidation)
	}

	return parsedURL, nil
}

// ValidateAlias проверяет пользовательский идентификатор.
func ValidateAlias(alias string) error {
	if !aliasRegex.MatchString(alias) {
		return fmt.Errorf("%w: alias must be 3-32 chars of [a-zA-Z0-9_-]", ErrValidation)
	}
	if slices.Contains(reservedAliases, strings.ToLower(alias)) {
		return fmt.Errorf("%w: alias `%s` is reserved", ErrValidation, alias)
	}
	return nil
}
