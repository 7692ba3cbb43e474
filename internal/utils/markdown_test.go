package utils

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "string vazia",
			input:    "",
			contains: nil,
		},
		{
			name:     "título e código",
			input:    "## Legenda `IGU-A2Z`",
			contains: []string{"<h2", "<code>IGU-A2Z</code>"},
		},
		{
			name:     "tabela",
			input:    "| Campo | Descrição |\n|---|---|\n| Contratante | IGU - IGUÁ |\n",
			contains: []string{"<table>", "<th>Campo</th>", "<td>IGU - IGUÁ</td>"},
		},
		{
			name:     "html bruto é descartado",
			input:    "texto <script>alert(1)</script>",
			contains: []string{"texto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MarkdownToHTML(tt.input)
			if tt.input == "" && result != "" {
				t.Errorf("esperado resultado vazio, obtido %q", result)
			}
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("MarkdownToHTML(%q) = %q; deveria conter %q", tt.input, result, want)
				}
			}
			if strings.Contains(result, "<script>") {
				t.Errorf("HTML bruto não deveria passar: %q", result)
			}
		})
	}
}
