package config

import (
	"net/url"
	"strings"
)

const redactedValue = "***"

// Redacted returns a copy of the config that is safe to log: the SMTP
// password is masked and credentials are stripped from connection strings.
func (c StructuredConfig) Redacted() StructuredConfig {
	c.Storage.DB.DSN = redactConnString(c.Storage.DB.DSN)
	c.Storage.Documents.URI = redactConnString(c.Storage.Documents.URI)
	c.Notifier.Rabbit.URL = redactConnString(c.Notifier.Rabbit.URL)
	if c.Notifier.SMTP.Password != "" {
		c.Notifier.SMTP.Password = redactedValue
	}
	return c
}

// redactConnString masks the password of a URL-style connection string.
// Strings that are not URLs but may carry credentials are masked whole.
func redactConnString(s string) string {
	if s == "" {
		return s
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || strings.Contains(u.RawQuery, "password=") {
		if strings.Contains(s, "@") || strings.Contains(s, "password=") {
			return redactedValue
		}
		return s
	}
	return u.Redacted()
}
