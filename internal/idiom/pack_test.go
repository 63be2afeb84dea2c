package idiom

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func validPackJSON(minAppVersion string) []byte {
	min := ""
	if minAppVersion != "" {
		min = fmt.Sprintf(`"minAppVersion": %q,`, minAppVersion)
	}
	return []byte(fmt.Sprintf(`{
	  "name": "starter",
	  "version": "1.0.0",
	  %s
	  "idioms": [
	    {
	      "id": "spill-the-beans",
	      "idiom": "spill the beans",
	      "meaning": "to reveal a secret",
	      "literalMeaning": "to knock over a container of beans",
	      "categories": ["food"],
	      "difficulty": "beginner",
	      "frequency": "common",
	      "examples": [{"sentence": "Don't spill the beans about the party.", "context": "casual"}]
	    }
	  ]
	}`, min))
}

func TestParsePack(t *testing.T) {
	p, err := ParsePack(validPackJSON(""), "v1.0.0")
	require.NoError(t, err)
	require.Equal(t, "starter", p.Name)
	require.Len(t, p.Idioms, 1)

	i := p.Idioms[0]
	require.Equal(t, "spill-the-beans", i.ID)
	require.Equal(t, "spill the beans", i.Text)
	require.Equal(t, DifficultyBeginner, i.Difficulty)
	require.Equal(t, []Category{CategoryFood}, i.Categories)
}

func TestParsePackSchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"name": "x"`},
		{"missing idioms", `{"name": "x", "version": "1"}`},
		{"empty idiom list", `{"name": "x", "version": "1", "idioms": []}`},
		{
			"idiom without meaning",
			`{"name": "x", "version": "1", "idioms": [
			  {"id": "a", "idiom": "a", "literalMeaning": "", "categories": ["food"],
			   "difficulty": "beginner", "frequency": "common", "examples": []}
			]}`,
		},
		{
			"unknown difficulty",
			`{"name": "x", "version": "1", "idioms": [
			  {"id": "a", "idiom": "a", "meaning": "m", "literalMeaning": "", "categories": ["food"],
			   "difficulty": "expert", "frequency": "common", "examples": []}
			]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePack([]byte(tt.raw), "v1.0.0")
			require.Error(t, err)
		})
	}
}

func TestParsePackMinAppVersion(t *testing.T) {
	// Older app refused.
	_, err := ParsePack(validPackJSON("2.0.0"), "v1.0.0")
	require.ErrorContains(t, err, "requires app v2.0.0 or newer")

	// Equal and newer apps accepted; the v prefix is optional on both sides.
	_, err = ParsePack(validPackJSON("2.0.0"), "2.0.0")
	require.NoError(t, err)
	_, err = ParsePack(validPackJSON("v1.2.0"), "1.10.0")
	require.NoError(t, err)

	// A development build with no parseable version skips the gate.
	_, err = ParsePack(validPackJSON("2.0.0"), "(devel)")
	require.NoError(t, err)

	// A malformed requirement is always an error.
	_, err = ParsePack(validPackJSON("not-a-version"), "v1.0.0")
	require.ErrorContains(t, err, "invalid minAppVersion")
}

func TestLoadPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.json")
	require.NoError(t, os.WriteFile(path, validPackJSON(""), 0o644))

	p, err := LoadPack(path, "v1.0.0")
	require.NoError(t, err)
	require.Equal(t, "starter", p.Name)

	_, err = LoadPack(filepath.Join(t.TempDir(), "missing.json"), "v1.0.0")
	require.ErrorContains(t, err, "read pack")
}

func TestPackFeedsCatalog(t *testing.T) {
	p, err := ParsePack(validPackJSON(""), "v1.0.0")
	require.NoError(t, err)

	c, err := NewCatalog(p.Idioms)
	require.NoError(t, err)
	got, err := c.Get("spill-the-beans")
	require.NoError(t, err)
	require.Equal(t, "to reveal a secret", got.Meaning)
}
