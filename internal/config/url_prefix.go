package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix абсолютный префикс, к которому добавляется короткий код.
// Всегда хранится с завершающим слешем.
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

// Set реализует flag.Value
func (p *URLPrefix) Set(value string) error {
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/") + "/")

	return nil
}

// UnmarshalText позволяет задавать префикс через переменные окружения
func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
