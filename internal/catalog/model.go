package catalog

import "fmt"

// Category is one of the five wellness dimensions scored independently.
type Category string

const (
	Energetic Category = "energetic"
	Emotional Category = "emotional"
	Mental    Category = "mental"
	Physical  Category = "physical"
	Spiritual Category = "spiritual"
)

// Categories lists every category in the order used for scoring and
// recommendations. Consumers must iterate this slice, never a map.
var Categories = []Category{Energetic, Emotional, Mental, Physical, Spiritual}

// Label returns a human readable name.
func (c Category) Label() string {
	switch c {
	case Energetic:
		return "Energetic"
	case Emotional:
		return "Emotional"
	case Mental:
		return "Mental"
	case Physical:
		return "Physical"
	case Spiritual:
		return "Spiritual"
	default:
		return string(c)
	}
}

// Known reports whether c is one of the five catalog categories.
func (c Category) Known() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// ParseCategory maps a string to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Known() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

const (
	MinAnswer = 1
	MaxAnswer = 5
)

type Option struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Category Category `json:"category" yaml:"category"`
	Prompt   string   `json:"prompt" yaml:"prompt"`
	Options  []Option `json:"options" yaml:"options"`
}
