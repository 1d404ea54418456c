package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidationError represents a single schema rule violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of schema rule violations.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid schema:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validator checks a schema declaration against every static rule in a
// single pass and reports all violations at once. It runs exactly once,
// at schema construction time; a schema that reaches the parsing engine
// has already passed.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{errors: make(ValidationErrors, 0)}
}

// Validate checks all entries. It returns nil if the declaration is
// well formed, otherwise the full ValidationErrors list.
func (v *Validator) Validate(entries []Entry) error {
	v.errors = make(ValidationErrors, 0)

	optionNames := make(map[string]bool)
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Kind == EntryOption && e.Option != nil {
			optionNames[e.Option.Name] = true
		}
	}

	for i, e := range entries {
		switch e.Kind {
		case EntryOption:
			if e.Option == nil {
				v.addError(fmt.Sprintf("entry[%d]", i), "option entry has no option spec")
				continue
			}
			v.validateOption(e.Option, optionNames)
			v.checkDuplicate(seen, e.Option.Name, "option")
		case EntryPositional:
			if e.Positional == nil {
				v.addError(fmt.Sprintf("entry[%d]", i), "positional entry has no positional spec")
				continue
			}
			v.validatePositional(e.Positional)
			v.checkDuplicate(seen, e.Positional.Name, "positional")
		default:
			v.addError(fmt.Sprintf("entry[%d]", i), fmt.Sprintf("unknown entry kind %d", e.Kind))
		}
	}

	if len(v.errors) > 0 {
		return v.errors
	}
	return nil
}

func (v *Validator) validateOption(o *OptionSpec, optionNames map[string]bool) {
	field := func(sub string) string {
		name := o.Name
		if name == "" {
			name = "?"
		}
		return "option." + name + "." + sub
	}

	if !validName(o.Name) {
		v.addError("option."+displayName(o.Name)+".name", "name must be non-empty and contain no whitespace")
	}

	if o.Long == "" && o.Short == "" {
		v.addError(field("forms"), "at least one of short or long form is required")
	}

	if o.Required && o.Default != nil {
		v.addError(field("default"), "required option cannot carry a default")
	}

	switch o.Arity.Kind {
	case ArityNone:
		if o.Default != nil {
			v.addError(field("default"), "flag (arity none) cannot carry a default")
		}
		if o.PossibleValues != nil {
			v.addError(field("possible_values"), "flag (arity none) cannot restrict values")
		}
	case ArityOne:
		if o.Default != nil && len(o.Default) != 1 {
			v.addError(field("default"), fmt.Sprintf("arity one requires exactly 1 default value, got %d", len(o.Default)))
		}
	case ArityMany:
		if o.Arity.Count < 1 {
			v.addError(field("arity"), fmt.Sprintf("arity many requires a count of at least 1, got %d", o.Arity.Count))
		}
		if o.Default != nil && len(o.Default) != o.Arity.Count {
			v.addError(field("default"), fmt.Sprintf("arity many:%d requires exactly %d default values, got %d", o.Arity.Count, o.Arity.Count, len(o.Default)))
		}
	default:
		v.addError(field("arity"), fmt.Sprintf("unknown arity kind %d", o.Arity.Kind))
	}

	for _, pv := range o.PossibleValues {
		if !validName(pv) {
			v.addError(field("possible_values"), fmt.Sprintf("value %q must be non-empty and contain no whitespace", pv))
		}
	}
	if o.PossibleValues != nil && o.Arity.Kind != ArityNone {
		for _, d := range o.Default {
			if !contains(o.PossibleValues, d) {
				v.addError(field("default"), fmt.Sprintf("default %q is not among possible values", d))
			}
		}
	}

	for _, c := range o.ConflictsWith {
		if c == o.Name {
			v.addError(field("conflicts_with"), "option cannot conflict with itself")
		} else if !optionNames[c] {
			v.addError(field("conflicts_with"), fmt.Sprintf("unknown option %q", c))
		}
	}
}

func (v *Validator) validatePositional(p *PositionalSpec) {
	if !validName(p.Name) {
		v.addError("positional."+displayName(p.Name)+".name", "name must be non-empty and contain no whitespace")
	}
}

func (v *Validator) checkDuplicate(seen map[string]bool, name, kind string) {
	if name == "" {
		return
	}
	if seen[name] {
		v.addError(kind+"."+name+".name", "name is already declared")
	}
	seen[name] = true
}

// addError adds a validation error.
func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{Field: field, Message: message})
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}

func displayName(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
