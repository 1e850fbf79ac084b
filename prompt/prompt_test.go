package prompt

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	fields := []Field{
		{Name: "company", Type: "string", Description: "company name"},
		{Name: "founded", Type: "number", Description: "year founded"},
	}

	tests := []struct {
		name     string
		template Template
		values   map[string]string
		want     string
	}{
		{
			name:     "fields only",
			template: New(fields, "", ""),
			values:   map[string]string{"company": "Acme", "founded": "1999"},
			want:     "JSON INSTRUCT with Fields:\ncompany (string): Acme\nfounded (number): 1999\n",
		},
		{
			name:     "missing value renders empty",
			template: New(fields, "", ""),
			values:   map[string]string{"company": "Acme"},
			want:     "JSON INSTRUCT with Fields:\ncompany (string): Acme\nfounded (number): \n",
		},
		{
			name:     "system and user preambles",
			template: New(fields[:1], "extract the fields", "from the article below"),
			values:   map[string]string{"company": "Acme"},
			want:     "System Input: extract the fields\nUser Input: from the article below\nJSON INSTRUCT with Fields:\ncompany (string): Acme\n",
		},
		{
			name:     "nil values",
			template: New(fields[:1], "", ""),
			values:   nil,
			want:     "JSON INSTRUCT with Fields:\ncompany (string): \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.template.Render(tt.values)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	tmpl := New([]Field{
		{Name: "b", Type: "string", Description: "second"},
		{Name: "a", Type: "string", Description: "first"},
	}, "sys", "usr")
	values := map[string]string{"a": "1", "b": "2"}

	first := tmpl.Render(values)
	for i := 0; i < 100; i++ {
		if got := tmpl.Render(values); got != first {
			t.Fatalf("render %d differs: %q vs %q", i, got, first)
		}
	}

	// field order follows the template, not the map
	if !strings.Contains(first, "b (string): 2\na (string): 1\n") {
		t.Errorf("Render() = %q, want template field order preserved", first)
	}
}
