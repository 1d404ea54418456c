package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a schema, loadable from YAML or JSON.
// It maps one to one onto Program plus the entry list; loading goes
// through the same Validator as programmatic construction.
type Document struct {
	Program     string          `yaml:"program" json:"program"`
	Version     string          `yaml:"version" json:"version"`
	Description string          `yaml:"description" json:"description"`
	Options     []OptionDoc     `yaml:"options" json:"options"`
	Positionals []PositionalDoc `yaml:"positionals" json:"positionals"`
}

// OptionDoc is the document form of an OptionSpec. Arity is spelled
// "none", "one" or "many:N".
type OptionDoc struct {
	Name        string   `yaml:"name" json:"name"`
	Long        string   `yaml:"long" json:"long"`
	Short       string   `yaml:"short" json:"short"`
	Arity       string   `yaml:"arity" json:"arity"`
	Metavar     string   `yaml:"metavar" json:"metavar"`
	Description string   `yaml:"description" json:"description"`
	Required    bool     `yaml:"required" json:"required"`
	Default     []string `yaml:"default" json:"default"`
	Possible    []string `yaml:"possible" json:"possible"`
	Conflicts   []string `yaml:"conflicts" json:"conflicts"`
}

// PositionalDoc is the document form of a PositionalSpec.
type PositionalDoc struct {
	Name        string `yaml:"name" json:"name"`
	Metavar     string `yaml:"metavar" json:"metavar"`
	Description string `yaml:"description" json:"description"`
}

// File is a loaded schema document: the program metadata plus the
// validated schema.
type File struct {
	Program Program
	Schema  *Schema
}

// LoadFile loads a schema document, choosing the decoder by file
// extension (.json for JSON, anything else is treated as YAML).
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(data)
	}
	return LoadYAML(data)
}

// LoadYAML decodes and validates a YAML schema document.
func LoadYAML(data []byte) (*File, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}
	return doc.Compile()
}

// LoadJSON decodes and validates a JSON schema document.
func LoadJSON(data []byte) (*File, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}
	return doc.Compile()
}

// Compile turns the document into a validated File.
func (d *Document) Compile() (*File, error) {
	var version Version
	if d.Version != "" {
		v, err := ParseVersion(d.Version)
		if err != nil {
			return nil, err
		}
		version = v
	}

	b := NewBuilder()
	for _, o := range d.Options {
		arity, err := parseArity(o.Arity)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", o.Name, err)
		}
		b.Option(OptionSpec{
			Name:           o.Name,
			Long:           o.Long,
			Short:          o.Short,
			Arity:          arity,
			Metavar:        o.Metavar,
			Description:    o.Description,
			Required:       o.Required,
			Default:        o.Default,
			PossibleValues: o.Possible,
			ConflictsWith:  o.Conflicts,
		})
	}
	for _, p := range d.Positionals {
		b.Positional(PositionalSpec{
			Name:        p.Name,
			Metavar:     p.Metavar,
			Description: p.Description,
		})
	}

	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &File{
		Program: Program{
			Name:        d.Program,
			Version:     version,
			Description: d.Description,
		},
		Schema: s,
	}, nil
}

// parseArity parses the document arity spelling: "none", "one" or
// "many:N". An empty spelling means "none".
func parseArity(s string) (Arity, error) {
	switch {
	case s == "" || s == "none":
		return None(), nil
	case s == "one":
		return One(), nil
	case strings.HasPrefix(s, "many:"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "many:"))
		if err != nil {
			return Arity{}, fmt.Errorf("invalid arity %q: bad count", s)
		}
		return Many(n), nil
	default:
		return Arity{}, fmt.Errorf("invalid arity %q: expected none, one or many:N", s)
	}
}
