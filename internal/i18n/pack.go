package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml locales/pack.schema.json
var embedded embed.FS

const schemaURL = "schema://leadquiz/pack.schema.json"

// ErrInvalidPack is returned when a content pack fails to parse or does not
// match the pack schema.
var ErrInvalidPack = errors.New("invalid content pack")

// Pack is the decoded form of one locale's content file.
type Pack struct {
	Locale   string         `yaml:"locale"`
	Name     string         `yaml:"name"`
	Quiz     PackQuiz       `yaml:"quiz"`
	Messages map[string]any `yaml:"messages"`
}

// PackQuiz holds the quiz questions of a pack.
type PackQuiz struct {
	Steps []PackStep `yaml:"steps"`
}

// PackStep is one question. Dimension is set on the steps the analysis
// reads from.
type PackStep struct {
	ID        int          `yaml:"id"`
	Question  string       `yaml:"question"`
	Dimension string       `yaml:"dimension"`
	Options   []PackOption `yaml:"options"`
}

// PackOption is one answer. Category maps the displayed text to its
// locale-independent analysis category.
type PackOption struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
}

var packSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := embedded.ReadFile("locales/pack.schema.json")
	if err != nil {
		return nil, fmt.Errorf("read pack schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse pack schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add pack schema: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}
	return sch, nil
})

// ParsePack decodes and validates a YAML content pack. source names the
// file in error messages.
func ParsePack(data []byte, source string) (*Pack, error) {
	// The validator works on JSON values, so the YAML document is
	// round-tripped through encoding/json first.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrInvalidPack, err)
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrInvalidPack, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrInvalidPack, err)
	}

	sch, err := packSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrInvalidPack, err)
	}

	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrInvalidPack, err)
	}
	return &p, nil
}
