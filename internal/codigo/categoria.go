// Package codigo contém o núcleo do gerador de códigos de projeto: o codec
// entre FieldSet e o código de 12 segmentos, o alocador de números
// sequenciais, o gerador de abreviações de contratantes e o contrato do
// dicionário de opções.
//
// Nenhuma função deste pacote faz I/O ou guarda estado entre chamadas. O
// dicionário e a lista de números usados chegam sempre como snapshot explícito
// passado pelo chamador.
package codigo

import (
	"fmt"
	"strings"
)

// Category identifica uma das nove dimensões categóricas do código.
// A ordem das constantes é a ordem dos segmentos no código.
type Category int

const (
	CategoryContratante Category = iota
	CategoryEmpresa
	CategoryLocalidade
	CategoryServico
	CategorySistema
	CategoryComponente
	CategoryEtapa
	CategoryDisciplina
	CategoryTipoDocumento
)

// categoryInfo liga cada categoria à sua chave de armazenamento e ao título da legenda
var categoryInfo = [...]struct {
	key   string
	title string
}{
	CategoryContratante:   {"contratantes", "Contratante"},
	CategoryEmpresa:       {"empresas", "Empresa"},
	CategoryLocalidade:    {"localidades", "Cidade/Estado"},
	CategoryServico:       {"servicos", "Serviço"},
	CategorySistema:       {"sistemas", "Sistema/Categoria"},
	CategoryComponente:    {"componentes", "Componente"},
	CategoryEtapa:         {"etapas", "Etapa"},
	CategoryDisciplina:    {"disciplinas", "Disciplina"},
	CategoryTipoDocumento: {"tipoDocumento", "Tipo de Documento"},
}

// Categories retorna todas as categorias na ordem dos segmentos
func Categories() []Category {
	out := make([]Category, len(categoryInfo))
	for i := range categoryInfo {
		out[i] = Category(i)
	}
	return out
}

// Valid informa se c é uma das nove categorias conhecidas
func (c Category) Valid() bool {
	return c >= CategoryContratante && c <= CategoryTipoDocumento
}

// Key retorna a chave usada no armazenamento (coluna category de code_options)
func (c Category) Key() string {
	if !c.Valid() {
		return fmt.Sprintf("categoria(%d)", int(c))
	}
	return categoryInfo[c].key
}

// Title retorna o título exibido na legenda
func (c Category) Title() string {
	if !c.Valid() {
		return ""
	}
	return categoryInfo[c].title
}

func (c Category) String() string {
	return c.Key()
}

// ParseCategory converte a chave de armazenamento na categoria correspondente.
// A comparação ignora maiúsculas/minúsculas; chaves desconhecidas são erro.
func ParseCategory(key string) (Category, error) {
	key = strings.TrimSpace(key)
	for i, info := range categoryInfo {
		if strings.EqualFold(info.key, key) {
			return Category(i), nil
		}
	}
	return 0, &ValidationError{Field: "categoria", Value: key, Err: ErrUnknownCategory}
}

// MarshalText permite usar Category diretamente em JSON e YAML
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &ValidationError{Field: "categoria", Value: c.Key(), Err: ErrUnknownCategory}
	}
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
