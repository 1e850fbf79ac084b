// Package prompt renders field-described instruction prompts.
package prompt

import (
	"fmt"
	"strings"
)

// Field describes one named value the model is asked to produce.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"field_type"`
	Description string `json:"description"`
}

// Template is an ordered set of field descriptors with optional
// system/user preambles. Rendering is a pure function of the template
// and the supplied values.
type Template struct {
	Fields      []Field `json:"fields"`
	SystemInput string  `json:"system_input,omitempty"`
	UserInput   string  `json:"user_input,omitempty"`
}

func New(fields []Field, systemInput, userInput string) Template {
	return Template{
		Fields:      fields,
		SystemInput: systemInput,
		UserInput:   userInput,
	}
}

// Render produces the instruction string. Fields iterate in the stored
// order, so identical inputs render byte-identical output; a field
// missing from values renders with an empty value.
func (t Template) Render(values map[string]string) string {
	var b strings.Builder

	if t.SystemInput != "" {
		fmt.Fprintf(&b, "System Input: %s\n", t.SystemInput)
	}
	if t.UserInput != "" {
		fmt.Fprintf(&b, "User Input: %s\n", t.UserInput)
	}

	b.WriteString("JSON INSTRUCT with Fields:\n")
	for _, field := range t.Fields {
		fmt.Fprintf(&b, "%s (%s): %s\n", field.Name, field.Type, values[field.Name])
	}

	return b.String()
}
