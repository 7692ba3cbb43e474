package models

import (
	"fmt"
	"time"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
)

// DateLayout é o formato aceito no campo data das requisições
const DateLayout = "2006-01-02"

// GenerateCodeRequest representa os dados de entrada para emitir um código.
// Numero vazio pede alocação automática.
type GenerateCodeRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Contratante   string `json:"contratante" validate:"required,max=20,excludes=-"`
	Empresa       string `json:"empresa" validate:"required,max=20,excludes=-"`
	Localidade    string `json:"localidade" validate:"required,max=20,excludes=-"`
	Servico       string `json:"servico" validate:"required,max=20,excludes=-"`
	Sistema       string `json:"sistema" validate:"required,max=20,excludes=-"`
	Componente    string `json:"componente" validate:"required,max=20,excludes=-"`
	Etapa         string `json:"etapa" validate:"required,max=20,excludes=-"`
	Disciplina    string `json:"disciplina" validate:"required,max=20,excludes=-"`
	TipoDocumento string `json:"tipo_documento" validate:"required,max=20,excludes=-"`
	Numero        string `json:"numero,omitempty" validate:"omitempty,numeric,max=4"`
	Data          string `json:"data,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-05-27"`
	Versao        string `json:"versao,omitempty" validate:"omitempty,max=10,excludes=-" example:"R0"`
}

// FieldSet converte a requisição nos campos do código
func (r GenerateCodeRequest) FieldSet() (codigo.FieldSet, error) {
	f := codigo.FieldSet{
		Contratante:   r.Contratante,
		Empresa:       r.Empresa,
		Localidade:    r.Localidade,
		Servico:       r.Servico,
		Sistema:       r.Sistema,
		Componente:    r.Componente,
		Etapa:         r.Etapa,
		Disciplina:    r.Disciplina,
		TipoDocumento: r.TipoDocumento,
		Numero:        r.Numero,
		Versao:        r.Versao,
	}
	if r.Data != "" {
		d, err := time.Parse(DateLayout, r.Data)
		if err != nil {
			return codigo.FieldSet{}, &codigo.ValidationError{Field: "data", Value: r.Data, Err: codigo.ErrInvalidDate}
		}
		f.Data = d
	}
	return f, nil
}

// CodeListResponse representa uma página da listagem de códigos
type CodeListResponse struct {
	Items  []codigo.IssuedCode `json:"items"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// NextNumberResponse traz a prévia do próximo número livre
type NextNumberResponse struct {
	Numero string `json:"numero" example:"0042"`
}

// LegendResponse representa a legenda de um código
type LegendResponse struct {
	Codigo string              `json:"codigo"`
	Valido bool                `json:"valido"`
	Itens  []codigo.LegendItem `json:"itens"`
}

// OptionRequest representa os dados de entrada para cadastrar uma opção
type OptionRequest struct {
	Value string `json:"value" validate:"required,max=20,excludes=-" example:"SP"`
	Label string `json:"label" validate:"required,max=200" example:"SP - SÃO PAULO"`
}

// OptionsResponse agrupa as opções ativas pela chave da categoria
type OptionsResponse map[string][]codigo.CategoryOption

// ContractorRequest representa o cadastro de um contratante pelo nome completo
type ContractorRequest struct {
	Nome string `json:"nome" validate:"required,max=200" example:"Carvalho Hosken"`
}

// ContractorResponse representa o contratante cadastrado ou já existente
type ContractorResponse struct {
	Option  codigo.CategoryOption `json:"option"`
	Created bool                  `json:"created"`
}

// AbbreviationResponse traz a prévia da abreviação de um nome
type AbbreviationResponse struct {
	Nome       string `json:"nome"`
	Abreviacao string `json:"abreviacao" example:"CAH"`
	Rotulo     string `json:"rotulo" example:"CAH - Carvalho Hosken"`
}

// LegendFormat é o formato de saída da legenda
type LegendFormat string

const (
	LegendFormatJSON     LegendFormat = "json"
	LegendFormatMarkdown LegendFormat = "markdown"
	LegendFormatHTML     LegendFormat = "html"
)

// ParseLegendFormat valida o parâmetro format; vazio assume json
func ParseLegendFormat(s string) (LegendFormat, error) {
	switch LegendFormat(s) {
	case "", LegendFormatJSON:
		return LegendFormatJSON, nil
	case LegendFormatMarkdown, LegendFormatHTML:
		return LegendFormat(s), nil
	}
	return "", fmt.Errorf("formato %q inválido, use json, markdown ou html", s)
}
