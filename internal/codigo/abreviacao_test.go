package codigo

import (
	"errors"
	"testing"
)

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CARVALHO HOSKEN", "CAH"},
		{"IGUÁ", "IGU"},
		{"iguá", "IGU"},
		{"Águas do Rio", "AGR"},
		{"COMPANHIA DE AGUAS DO RIO", "CAR"},
		{"Companhia Estadual de Águas e Esgotos", "CEA"},
		{"RJ", "RJ"},
		{"  Sabesp  ", "SAB"},
		{"Concessionária Rio+Saneamento", "COR"},
		{"A2Z PROJETOS", "PRO"},
		{"S.A. Engenharia", "SAE"},
		{"ODEBRECHT-OAS", "ODE"},
		{"CONSTRUTORA O.A.S.", "COO"},
		{"Rede D'Or", "RED"},
	}

	for _, test := range tests {
		result, err := Abbreviate(test.input)
		if err != nil {
			t.Errorf("Abbreviate(%q) retornou erro: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("Abbreviate(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestAbbreviateEmptyName(t *testing.T) {
	for _, input := range []string{"", "   ", "A2Z", "de da do", "E", "123", "--"} {
		_, err := Abbreviate(input)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("Abbreviate(%q): esperado ErrEmptyName, obtido %v", input, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Abbreviate(%q): erro deveria ser de validação", input)
		}
	}
}

func TestAbbreviateDeterministic(t *testing.T) {
	first, err := Abbreviate("Carvalho Hosken")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, _ := Abbreviate("Carvalho Hosken")
		if again != first {
			t.Fatalf("resultado mudou: %q != %q", again, first)
		}
	}
}

func TestContractorLabel(t *testing.T) {
	if got := ContractorLabel("CAH", " CARVALHO HOSKEN "); got != "CAH - CARVALHO HOSKEN" {
		t.Errorf("ContractorLabel = %q", got)
	}
}
