package idiom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an idiom id is not in the catalog.
var ErrNotFound = errors.New("idiom not found")

// Repository provides read access to idiom reference data.
type Repository interface {
	Get(id string) (Idiom, error)
	Filter(f Filter) []Idiom
	All() []Idiom
}

// Filter selects idioms by category, difficulty, frequency, or free text.
// Zero-value fields match everything.
type Filter struct {
	Categories   []Category
	Difficulties []Difficulty
	Frequencies  []Frequency
	Search       string
}

// Catalog is an in-memory Repository over a fixed idiom set.
type Catalog struct {
	byID    map[string]Idiom
	ordered []Idiom
}

// NewCatalog builds a catalog, rejecting duplicate or empty ids.
func NewCatalog(idioms []Idiom) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]Idiom, len(idioms)),
		ordered: make([]Idiom, 0, len(idioms)),
	}
	for _, i := range idioms {
		if i.ID == "" {
			return nil, fmt.Errorf("idiom %q has empty id", i.Text)
		}
		if _, dup := c.byID[i.ID]; dup {
			return nil, fmt.Errorf("duplicate idiom id %q", i.ID)
		}
		c.byID[i.ID] = i
		c.ordered = append(c.ordered, i)
	}
	return c, nil
}

// Get returns the idiom with the given id.
func (c *Catalog) Get(id string) (Idiom, error) {
	i, ok := c.byID[id]
	if !ok {
		return Idiom{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return i, nil
}

// All returns every idiom in catalog order.
func (c *Catalog) All() []Idiom {
	out := make([]Idiom, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Filter returns the idioms matching f, preserving catalog order.
func (c *Catalog) Filter(f Filter) []Idiom {
	var out []Idiom
	for _, i := range c.ordered {
		if matches(i, f) {
			out = append(out, i)
		}
	}
	return out
}

func matches(i Idiom, f Filter) bool {
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if i.InCategory(c) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Difficulties) > 0 && !containsDifficulty(f.Difficulties, i.Difficulty) {
		return false
	}
	if len(f.Frequencies) > 0 && !containsFrequency(f.Frequencies, i.Frequency) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(i.Text), q) &&
			!strings.Contains(strings.ToLower(i.Meaning), q) {
			return false
		}
	}
	return true
}

func containsDifficulty(ds []Difficulty, d Difficulty) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

func containsFrequency(fs []Frequency, f Frequency) bool {
	for _, x := range fs {
		if x == f {
			return true
		}
	}
	return false
}
