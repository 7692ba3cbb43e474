package codigo

import (
	"strings"
	"testing"
)

func sampleDictionary() Dictionary {
	return Dictionary{
		CategoryContratante:   {{Category: CategoryContratante, Value: "IGU", Label: "IGU - IGUÁ", Active: true}},
		CategoryEmpresa:       {{Category: CategoryEmpresa, Value: "A2Z", Label: "A2Z - A2Z PROJETOS", Active: true}},
		CategoryLocalidade:    {{Category: CategoryLocalidade, Value: "RJ", Label: "RJ - RIO DE JANEIRO", Active: true}},
		CategoryServico:       {{Category: CategoryServico, Value: "A", Label: "A - ÁGUA", Active: true}},
		CategorySistema:       {{Category: CategorySistema, Value: "002", Label: "002 - PROJETOS SAA", Active: true}},
		CategoryComponente:    {{Category: CategoryComponente, Value: "20", Label: "20 - ADUTORAS E SUB-AUTORAS DE AGUA TRATADA", Active: true}},
		CategoryEtapa:         {{Category: CategoryEtapa, Value: "E", Label: "E - PROJETO EXECUTIVO", Active: true}},
		CategoryDisciplina:    {{Category: CategoryDisciplina, Value: "H", Label: "H - HIDROMECÂNICO", Active: true}},
		CategoryTipoDocumento: {{Category: CategoryTipoDocumento, Value: "DE", Label: "DE - DESENHO", Active: true}},
	}
}

func TestDecodeToLegend(t *testing.T) {
	items := DecodeToLegend("IGU-A2Z-RJ-A-002-20-E-H-DE-0001-150724-R0", sampleDictionary())

	expected := []LegendItem{
		{"Contratante", "IGU - IGUÁ"},
		{"Empresa", "A2Z - A2Z PROJETOS"},
		{"Cidade/Estado", "RJ - RIO DE JANEIRO"},
		{"Serviço", "A - ÁGUA"},
		{"Sistema/Categoria", "002 - PROJETOS SAA"},
		{"Componente", "20 - ADUTORAS E SUB-AUTORAS DE AGUA TRATADA"},
		{"Etapa", "E - PROJETO EXECUTIVO"},
		{"Disciplina", "H - HIDROMECÂNICO"},
		{"Tipo de Documento", "DE - DESENHO"},
		{"Número Sequencial", "0001 - Número Sequencial (4 dígitos)"},
		{"Data", "150724 - Data (DDMMAA)"},
		{"Versão", "R0 - Versão (Ex: R0)"},
	}

	if len(items) != len(expected) {
		t.Fatalf("legenda com %d itens, esperado %d", len(items), len(expected))
	}
	for i := range expected {
		if items[i] != expected[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], expected[i])
		}
	}
}

func TestDecodeToLegendTooFewSegments(t *testing.T) {
	for _, code := range []string{"", "IGU", "IGU-A2Z-RJ-A-002-20-E-H-DE-0001-150724"} {
		items := DecodeToLegend(code, sampleDictionary())
		if len(items) != 1 || items[0].Title != "Erro" {
			t.Errorf("DecodeToLegend(%q) = %+v; esperado item único de erro", code, items)
		}
		if !IsLegendError(items) {
			t.Errorf("IsLegendError(%q) deveria ser verdadeiro", code)
		}
	}
}

func TestDecodeToLegendUnknownValues(t *testing.T) {
	items := DecodeToLegend("XYZ-A2Z-SP-A-002-20-E-H-ZZ-0007-010124-R1", sampleDictionary())
	if len(items) != SegmentCount {
		t.Fatalf("legenda deveria ter %d itens, obtido %d", SegmentCount, len(items))
	}
	if items[0].Text != "XYZ não encontrado" {
		t.Errorf("contratante desconhecido: %q", items[0].Text)
	}
	if items[2].Text != "SP não encontrado" {
		t.Errorf("localidade desconhecida: %q", items[2].Text)
	}
	if items[8].Text != "ZZ não encontrado" {
		t.Errorf("tipo de documento desconhecido: %q", items[8].Text)
	}
	if IsLegendError(items) {
		t.Error("legenda com valores desconhecidos não é erro")
	}
}

func TestDecodeToLegendEmptyDictionary(t *testing.T) {
	items := DecodeToLegend("IGU-A2Z-RJ-A-002-20-E-H-DE-0001-150724-R0", nil)
	if len(items) != SegmentCount {
		t.Fatalf("esperado %d itens", SegmentCount)
	}
	for _, item := range items[:9] {
		if !strings.HasSuffix(item.Text, "não encontrado") {
			t.Errorf("item %q deveria estar não encontrado: %q", item.Title, item.Text)
		}
	}
}

func TestLegendMarkdown(t *testing.T) {
	md := LegendMarkdown("IGU-X", []LegendItem{{"Contratante", "A | B"}})
	if !strings.Contains(md, "| Contratante | A \\| B |") {
		t.Errorf("tabela markdown inesperada:\n%s", md)
	}
	if !strings.HasPrefix(md, "## Legenda `IGU-X`") {
		t.Errorf("cabeçalho inesperado:\n%s", md)
	}
}

func TestSortByLabel(t *testing.T) {
	options := []CategoryOption{
		{Value: "PY", Label: "PY - PATY DO ALFERES"},
		{Value: "CB", Label: "CB - CUIABÁ"},
		{Value: "a", Label: "a - minúsculo"},
		{Value: "RJ", Label: "RJ - RIO DE JANEIRO"},
	}
	SortByLabel(options)

	want := []string{"a", "CB", "PY", "RJ"}
	for i, v := range want {
		if options[i].Value != v {
			t.Errorf("posição %d = %q, want %q", i, options[i].Value, v)
		}
	}
}

func TestDictionaryLookup(t *testing.T) {
	d := sampleDictionary()
	if label, ok := d.Lookup(CategoryEmpresa, "A2Z"); !ok || label != "A2Z - A2Z PROJETOS" {
		t.Errorf("Lookup = %q, %v", label, ok)
	}
	if d.Has(CategoryEmpresa, "IGU") {
		t.Error("IGU não é empresa")
	}
}
