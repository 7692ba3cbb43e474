package codigo

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryOption é um par (valor, rótulo) de uma categoria do dicionário
type CategoryOption struct {
	Category  Category  `json:"category" yaml:"category"`
	Value     string    `json:"value" yaml:"value"`
	Label     string    `json:"label" yaml:"label"`
	Active    bool      `json:"is_active" yaml:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"-"`
}

// Dictionary é um snapshot do dicionário: opções ativas por categoria.
// É montado pelo chamador a cada operação; o núcleo nunca o guarda.
type Dictionary map[Category][]CategoryOption

// Lookup procura o rótulo de value na categoria
func (d Dictionary) Lookup(category Category, value string) (string, bool) {
	for _, opt := range d[category] {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}

// Has informa se value existe entre as opções da categoria
func (d Dictionary) Has(category Category, value string) bool {
	_, ok := d.Lookup(category, value)
	return ok
}

// SortByLabel ordena as opções pelo rótulo usando a collation pt-BR,
// equivalente ao localeCompare do navegador. Empates são resolvidos pelo valor.
func SortByLabel(options []CategoryOption) {
	// Collator não é seguro para uso concorrente, por isso um por chamada
	c := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(options, func(i, j int) bool {
		if r := c.CompareString(options[i].Label, options[j].Label); r != 0 {
			return r < 0
		}
		return options[i].Value < options[j].Value
	})
}

// ActiveOnly filtra as opções ativas, preservando a ordem
func ActiveOnly(options []CategoryOption) []CategoryOption {
	out := make([]CategoryOption, 0, len(options))
	for _, opt := range options {
		if opt.Active {
			out = append(out, opt)
		}
	}
	return out
}
