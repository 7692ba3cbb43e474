package codigo

import (
	"errors"
	"fmt"
	"testing"
)

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		expected string
	}{
		{"lista vazia", nil, "0001"},
		{"sequência contínua", []string{"0001", "0002", "0003"}, "0004"},
		{"lacuna no meio", []string{"0001", "0002", "0004"}, "0003"},
		{"lacuna no início", []string{"0002", "0003"}, "0001"},
		{"fora de ordem", []string{"0004", "0001", "0002"}, "0003"},
		{"repetidos", []string{"0001", "0001", "0002"}, "0003"},
		{"sem zeros à esquerda", []string{"1", "2"}, "0003"},
		{"entradas inválidas ignoradas", []string{"0001", "abc", "", "0000", "-3", "0002"}, "0003"},
		{"número alto isolado", []string{"0500"}, "0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextNumber(tt.existing)
			if err != nil {
				t.Fatalf("NextNumber retornou erro: %v", err)
			}
			if got != tt.expected {
				t.Errorf("NextNumber(%v) = %q, want %q", tt.existing, got, tt.expected)
			}
		})
	}
}

func TestNextNumberReusesDeleted(t *testing.T) {
	existing := []string{"0001", "0002", "0003", "0004"}
	first, _ := NextNumber(existing)
	if first != "0005" {
		t.Fatalf("esperado 0005, obtido %s", first)
	}

	// exclusão do 0003 libera o número
	afterDelete := []string{"0001", "0002", "0004"}
	got, _ := NextNumber(afterDelete)
	if got != "0003" {
		t.Errorf("esperado reuso de 0003, obtido %s", got)
	}
}

func TestNextNumberExhausted(t *testing.T) {
	all := make([]string, 0, MaxNumber)
	for i := 1; i <= MaxNumber; i++ {
		all = append(all, fmt.Sprintf("%04d", i))
	}
	if _, err := NextNumber(all); !errors.Is(err, ErrSequenceExhausted) {
		t.Errorf("esperado ErrSequenceExhausted, obtido %v", err)
	}

	// com uma lacuna ainda há número disponível
	withGap := append([]string{}, all[:41]...)
	withGap = append(withGap, all[42:]...)
	got, err := NextNumber(withGap)
	if err != nil || got != "0042" {
		t.Errorf("NextNumber = %q, %v; want 0042", got, err)
	}
}

func TestFormatNumber(t *testing.T) {
	valid := map[string]string{"7": "0007", "07": "0007", "700": "0700", "7000": "7000"}
	for in, want := range valid {
		got, err := FormatNumber(in)
		if err != nil || got != want {
			t.Errorf("FormatNumber(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	for _, in := range []string{"", "10000", "7a", "0"} {
		if _, err := FormatNumber(in); !errors.Is(err, ErrValidation) {
			t.Errorf("FormatNumber(%q): esperado erro de validação, obtido %v", in, err)
		}
	}
}
