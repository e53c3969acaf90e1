package errors

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode"
)

// MaxSeedLength bounds seeds accepted from the command line.
const MaxSeedLength = 256

// ValidateSeed checks a user-supplied seed. Any string is a valid generator
// seed, but seeds also end up in file names, URLs and mail headers, so
// control characters and very long values are rejected here.
func ValidateSeed(seed string) error {
	if len(seed) > MaxSeedLength {
		return New(ErrCodeInvalidSeed, "seed too long (max %d characters)", MaxSeedLength)
	}
	for _, r := range seed {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSeed, "seed contains invalid control characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https) and a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return New(ErrCodeInvalidInput, "URL %q is malformed", rawURL)
	}
	return nil
}

// ValidateEmail checks that addr is a single bare address such as
// "me@example.com". Display names are rejected since the address is used
// in the SMTP envelope.
func ValidateEmail(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "email address cannot be empty")
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid email address %q", addr)
	}
	if parsed.Address != addr || parsed.Name != "" {
		return New(ErrCodeInvalidInput, "email address %q must not include a display name", addr)
	}
	return nil
}
