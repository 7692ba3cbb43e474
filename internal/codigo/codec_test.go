package codigo

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleFields() FieldSet {
	return FieldSet{
		Contratante:   "IGU",
		Empresa:       "A2Z",
		Localidade:    "RJ",
		Servico:       "A",
		Sistema:       "002",
		Componente:    "20",
		Etapa:         "E",
		Disciplina:    "H",
		TipoDocumento: "DE",
		Numero:        "1",
		Data:          time.Date(2024, time.July, 15, 14, 30, 0, 0, time.UTC),
		Versao:        "R0",
	}
}

func TestEncode(t *testing.T) {
	code, err := Encode(sampleFields())
	if err != nil {
		t.Fatalf("Encode retornou erro: %v", err)
	}
	expected := "IGU-A2Z-RJ-A-002-20-E-H-DE-0001-150724-R0"
	if code != expected {
		t.Errorf("Encode = %q; expected %q", code, expected)
	}
	if n := len(strings.Split(code, Separator)); n != SegmentCount {
		t.Errorf("código com %d segmentos", n)
	}
}

func TestEncodeNumberPadding(t *testing.T) {
	tests := []struct {
		numero   string
		expected string
	}{
		{"1", "0001"},
		{"12", "0012"},
		{"123", "0123"},
		{"1234", "1234"},
		{"0042", "0042"},
		{"9999", "9999"},
	}

	for _, test := range tests {
		f := sampleFields()
		f.Numero = test.numero
		code, err := Encode(f)
		if err != nil {
			t.Errorf("Encode(numero=%q) retornou erro: %v", test.numero, err)
			continue
		}
		got, _ := NumberOf(code)
		if got != test.expected {
			t.Errorf("Encode(numero=%q) gerou número %q; expected %q", test.numero, got, test.expected)
		}
	}
}

func TestEncodeInvalidNumber(t *testing.T) {
	for _, numero := range []string{"12345", "00001", "abc", "1a", "-1", " 12", "0", "0000", "１２"} {
		f := sampleFields()
		f.Numero = numero
		_, err := Encode(f)
		if !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("Encode(numero=%q): esperado ErrInvalidNumber, obtido %v", numero, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Encode(numero=%q): erro deveria ser de validação", numero)
		}
	}
}

func TestEncodeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FieldSet)
		field  string
		cause  error
	}{
		{"contratante vazio", func(f *FieldSet) { f.Contratante = "" }, "contratantes", ErrEmptyField},
		{"disciplina só com espaços", func(f *FieldSet) { f.Disciplina = "  " }, "disciplinas", ErrEmptyField},
		{"tipo de documento com hífen", func(f *FieldSet) { f.TipoDocumento = "D-E" }, "tipoDocumento", ErrInvalidSegment},
		{"numero vazio", func(f *FieldSet) { f.Numero = "" }, "numero", ErrEmptyField},
		{"data ausente", func(f *FieldSet) { f.Data = time.Time{} }, "data", ErrInvalidDate},
		{"versao vazia", func(f *FieldSet) { f.Versao = "" }, "versao", ErrEmptyField},
		{"versao com hífen", func(f *FieldSet) { f.Versao = "R-1" }, "versao", ErrInvalidSegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sampleFields()
			tt.mutate(&f)
			_, err := Encode(f)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("esperado *ValidationError, obtido %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("causa = %v, want %v", verr.Err, tt.cause)
			}
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	inputs := []FieldSet{sampleFields()}

	other := sampleFields()
	other.Contratante = "CAH"
	other.Empresa = "2SE"
	other.Numero = "9999"
	other.Data = time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)
	other.Versao = "R12"
	inputs = append(inputs, other)

	for _, f := range inputs {
		code, err := Encode(f)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		decoded, err := Decode(code)
		if err != nil {
			t.Fatalf("Decode(%q): %v", code, err)
		}
		again, err := Encode(decoded)
		if err != nil {
			t.Fatalf("Encode(Decode(%q)): %v", code, err)
		}

		want, _ := Split(code)
		got, _ := Split(again)
		for i := range want {
			if want[i] != got[i] {
				t.Errorf("segmento %d: %q != %q", i, got[i], want[i])
			}
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []string{
		"",
		"IGU-A2Z-RJ-A-002-20-E-H-DE-0001-150724",
		"IGU-A2Z-RJ-A-002-20-E-H-DE-0001-150724-R0-X",
	}
	for _, code := range tests {
		_, err := Decode(code)
		var merr *MalformedIdentifierError
		if !errors.As(err, &merr) {
			t.Errorf("Decode(%q): esperado MalformedIdentifierError, obtido %v", code, err)
			continue
		}
		if !errors.Is(err, ErrMalformedIdentifier) {
			t.Errorf("Decode(%q): erro deveria envolver ErrMalformedIdentifier", code)
		}
	}
}

func TestDecodeInvalidSegments(t *testing.T) {
	tests := []struct {
		code  string
		cause error
	}{
		{"IGU-A2Z-RJ-A-002-20-E-H-DE-001-150724-R0", ErrInvalidNumber},
		{"IGU-A2Z-RJ-A-002-20-E-H-DE-0000-150724-R0", ErrInvalidNumber},
		{"IGU-A2Z-RJ-A-002-20-E-H-DE-0001-321324-R0", ErrInvalidDate},
		{"IGU- -RJ-A-002-20-E-H-DE-0001-150724-R0", ErrEmptyField},
	}
	for _, tt := range tests {
		_, err := Decode(tt.code)
		if !errors.Is(err, tt.cause) {
			t.Errorf("Decode(%q) = %v; esperado %v", tt.code, err, tt.cause)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("esperado 9 categorias, obtido %d", len(cats))
	}
	for i, c := range cats {
		if int(c) != i {
			t.Errorf("categoria %s fora de ordem", c)
		}
		parsed, err := ParseCategory(c.Key())
		if err != nil || parsed != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.Key(), parsed, err)
		}
		if c.Title() == "" {
			t.Errorf("categoria %s sem título", c)
		}
	}

	if _, err := ParseCategory("cores"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("ParseCategory(cores): esperado ErrUnknownCategory, obtido %v", err)
	}
	if c, err := ParseCategory("TIPODOCUMENTO"); err != nil || c != CategoryTipoDocumento {
		t.Errorf("ParseCategory deveria ignorar maiúsculas: %v, %v", c, err)
	}
}
