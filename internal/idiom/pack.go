package idiom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
)

// Pack is a loadable idiom content pack. Packs are versioned so that
// content authored for a newer app release is refused cleanly instead of
// failing deep inside question generation.
type Pack struct {
	Name          string  `json:"name"`
	Version       string  `json:"version"`
	MinAppVersion string  `json:"minAppVersion,omitempty"`
	Idioms        []Idiom `json:"idioms"`
}

// LoadPack reads, validates, and parses a content pack from path.
// appVersion is the running application version ("v1.2.0" or "1.2.0").
func LoadPack(path, appVersion string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	return ParsePack(raw, appVersion)
}

// ParsePack validates raw JSON against the pack schema and decodes it.
func ParsePack(raw []byte, appVersion string) (*Pack, error) {
	if err := validatePack(raw); err != nil {
		return nil, err
	}

	var p Pack
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}

	if p.MinAppVersion != "" {
		min := canonicalVersion(p.MinAppVersion)
		app := canonicalVersion(appVersion)
		if !semver.IsValid(min) {
			return nil, fmt.Errorf("pack %q: invalid minAppVersion %q", p.Name, p.MinAppVersion)
		}
		if semver.IsValid(app) && semver.Compare(app, min) < 0 {
			return nil, fmt.Errorf("pack %q requires app %s or newer (running %s)", p.Name, min, app)
		}
	}

	return &p, nil
}

// canonicalVersion normalizes a version string to the "vX.Y.Z" form
// expected by the semver package.
func canonicalVersion(v string) string {
	if v == "" {
		return v
	}
	if v[0] != 'v' {
		v = "v" + v
	}
	return v
}
