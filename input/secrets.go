package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/bytedance/sonic"
)

// ErrNoSecrets indicates that neither the environment variables nor a
// secret.json file provided credentials.
var ErrNoSecrets = errors.New("input: no credentials found (set AOC_COOKIE/AOC_YEAR or provide secret.json)")

// ErrBadSecrets indicates credentials were found but are empty or
// implausible.
var ErrBadSecrets = errors.New("input: invalid credentials")

// SecretFileName is the conventional credentials file name.
const SecretFileName = "secret.json"

const (
	envCookie = "AOC_COOKIE"
	envYear   = "AOC_YEAR"
)

// Secrets holds the session credentials for the puzzle service. It is a
// plain value: callers load it once and pass it where needed, instead of
// reading process-wide mutable state.
type Secrets struct {
	Cookie string `json:"AOC_COOKIE"`
	Year   string `json:"YEAR"`
}

// LoadSecrets resolves credentials, environment first, then the JSON file
// at path (conventionally SecretFileName). Environment variables win so
// containerized runs never need a file on disk.
// Returns ErrNoSecrets when nothing is configured, ErrBadSecrets when the
// configured values fail validation.
func LoadSecrets(path string) (Secrets, error) {
	if cookie, year := os.Getenv(envCookie), os.Getenv(envYear); cookie != "" && year != "" {
		s := Secrets{Cookie: cookie, Year: year}
		return s, s.validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, ErrNoSecrets
		}
		return Secrets{}, fmt.Errorf("input: reading %s: %w", path, err)
	}

	var s Secrets
	if err = sonic.Unmarshal(raw, &s); err != nil {
		return Secrets{}, fmt.Errorf("%w: %s is not valid JSON: %v", ErrBadSecrets, path, err)
	}

	return s, s.validate()
}

// WriteSecrets stores the credentials at path with owner-only permissions.
// It validates first; a broken file never reaches the disk.
func WriteSecrets(path string, s Secrets) error {
	if err := s.validate(); err != nil {
		return err
	}
	raw, err := sonic.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("input: marshaling secrets: %w", err)
	}

	return os.WriteFile(path, append(raw, '\n'), 0o600)
}

// validate rejects empty cookies and years outside a plausible window.
func (s Secrets) validate() error {
	if s.Cookie == "" {
		return fmt.Errorf("%w: cookie is empty", ErrBadSecrets)
	}
	year, err := strconv.Atoi(s.Year)
	if err != nil {
		return fmt.Errorf("%w: year %q is not an integer", ErrBadSecrets, s.Year)
	}
	if year < 2015 || year > 2100 {
		return fmt.Errorf("%w: year %d out of range", ErrBadSecrets, year)
	}

	return nil
}
