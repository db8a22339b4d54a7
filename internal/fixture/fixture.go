package fixture

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed data/events.yaml
var defaultSeed []byte

// Flag is a boolean that also accepts 0/1 in fixture files.
type Flag bool

func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a boolean or 0/1, got %s", value.Line, kindName(value.Kind))
	}

	if n, err := strconv.Atoi(value.Value); err == nil {
		switch n {
		case 0:
			*f = false
			return nil
		case 1:
			*f = true
			return nil
		}
		return fmt.Errorf("line %d: flag must be 0 or 1, got %d", value.Line, n)
	}

	var b bool
	if err := value.Decode(&b); err != nil {
		return fmt.Errorf("line %d: invalid flag value %q", value.Line, value.Value)
	}
	*f = Flag(b)
	return nil
}

// Int returns the flag as 1 or 0.
func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}

type TicketCategory struct {
	ID string `yaml:"id"`
	// EventID is optional; categories belong to the event they are nested under.
	EventID           string `yaml:"event_id,omitempty"`
	Name              string `yaml:"name"`
	DisplayName       string `yaml:"display_name"`
	Price             int64  `yaml:"price"`
	TotalQuantity     int    `yaml:"total_quantity"`
	AvailableQuantity int    `yaml:"available_quantity"`
	MaxPerOrder       int    `yaml:"max_per_order"`
}

type Event struct {
	ID               string           `yaml:"id"`
	Title            string           `yaml:"title"`
	Artist           string           `yaml:"artist"`
	Category         string           `yaml:"category"`
	Date             string           `yaml:"date"`
	Time             string           `yaml:"time"`
	VenueName        string           `yaml:"venueName"`
	VenueCity        string           `yaml:"venueCity"`
	VenueAddress     string           `yaml:"venueAddress"`
	VenueCapacity    int              `yaml:"venueCapacity"`
	ImageURL         string           `yaml:"imageUrl"`
	Description      string           `yaml:"description"`
	Year             int              `yaml:"year"`
	IsFeatured       Flag             `yaml:"isFeatured"`
	TicketCategories []TicketCategory `yaml:"ticketCategories"`
}

// SeedSet is the ordered list of events rendered into one seed script.
type SeedSet struct {
	Events []Event `yaml:"events"`
}

// CategoryCount returns the number of ticket categories across all events.
func (s *SeedSet) CategoryCount() int {
	n := 0
	for _, evt := range s.Events {
		n += len(evt.TicketCategories)
	}
	return n
}

// Load reads a seed set from a YAML or JSON file.
func Load(path string) (*SeedSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return set, nil
}

// Default returns the seed set bundled with the binary.
func Default() (*SeedSet, error) {
	return Parse(defaultSeed)
}

// DefaultYAML returns the raw bundled seed set, as written by `seedgen init`.
func DefaultYAML() []byte {
	return bytes.Clone(defaultSeed)
}

// Parse decodes a seed set. The document is either a mapping with an
// `events` key or a bare sequence of events.
func Parse(data []byte) (*SeedSet, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	set := &SeedSet{}
	if root.Kind == 0 || len(root.Content) == 0 {
		return set, nil
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&set.Events); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		if err := doc.Decode(set); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("expected a list of events or an `events` mapping, got %s", kindName(doc.Kind))
	}

	return set, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
