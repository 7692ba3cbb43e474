package codigo

import (
	"strings"
	"time"
)

const (
	// SegmentCount é o número de segmentos de um código completo
	SegmentCount = 12
	// Separator separa os segmentos do código
	Separator = "-"
	// NumberWidth é a largura fixa do número sequencial
	NumberWidth = 4
	// DateLayout é o layout Go equivalente a ddMMyy
	DateLayout = "020106"
	// DefaultVersion é a versão inicial sugerida
	DefaultVersion = "R0"
)

// Índices dos segmentos não categóricos
const (
	segmentNumero = 9
	segmentData   = 10
	segmentVersao = 11
)

// FieldSet é a tupla de valores que compõe um código
type FieldSet struct {
	Contratante   string    `json:"contratante"`
	Empresa       string    `json:"empresa"`
	Localidade    string    `json:"localidade"`
	Servico       string    `json:"servico"`
	Sistema       string    `json:"sistema"`
	Componente    string    `json:"componente"`
	Etapa         string    `json:"etapa"`
	Disciplina    string    `json:"disciplina"`
	TipoDocumento string    `json:"tipo_documento"`
	Numero        string    `json:"numero"`
	Data          time.Time `json:"data"`
	Versao        string    `json:"versao"`
}

// Categorical retorna o valor do campo categórico correspondente a c
func (f FieldSet) Categorical(c Category) string {
	switch c {
	case CategoryContratante:
		return f.Contratante
	case CategoryEmpresa:
		return f.Empresa
	case CategoryLocalidade:
		return f.Localidade
	case CategoryServico:
		return f.Servico
	case CategorySistema:
		return f.Sistema
	case CategoryComponente:
		return f.Componente
	case CategoryEtapa:
		return f.Etapa
	case CategoryDisciplina:
		return f.Disciplina
	case CategoryTipoDocumento:
		return f.TipoDocumento
	}
	return ""
}

func (f *FieldSet) setCategorical(c Category, v string) {
	switch c {
	case CategoryContratante:
		f.Contratante = v
	case CategoryEmpresa:
		f.Empresa = v
	case CategoryLocalidade:
		f.Localidade = v
	case CategoryServico:
		f.Servico = v
	case CategorySistema:
		f.Sistema = v
	case CategoryComponente:
		f.Componente = v
	case CategoryEtapa:
		f.Etapa = v
	case CategoryDisciplina:
		f.Disciplina = v
	case CategoryTipoDocumento:
		f.TipoDocumento = v
	}
}

// Encode valida o FieldSet e monta o código de 12 segmentos.
// Só verifica a forma dos valores; a existência no dicionário é
// responsabilidade do chamador.
func Encode(f FieldSet) (string, error) {
	segments := make([]string, 0, SegmentCount)

	for _, c := range Categories() {
		v := f.Categorical(c)
		if err := checkSegment(c.Key(), v); err != nil {
			return "", err
		}
		segments = append(segments, v)
	}

	numero, err := FormatNumber(f.Numero)
	if err != nil {
		return "", err
	}

	if f.Data.IsZero() {
		return "", &ValidationError{Field: "data", Err: ErrInvalidDate}
	}

	if err := checkSegment("versao", f.Versao); err != nil {
		return "", err
	}

	segments = append(segments, numero, f.Data.Format(DateLayout), f.Versao)
	return strings.Join(segments, Separator), nil
}

// Split separa o código em exatamente 12 segmentos
func Split(identifier string) ([]string, error) {
	parts := strings.Split(identifier, Separator)
	if len(parts) != SegmentCount {
		return nil, &MalformedIdentifierError{Identifier: identifier, Segments: len(parts)}
	}
	return parts, nil
}

// Decode é o inverso estrito de Encode
func Decode(identifier string) (FieldSet, error) {
	parts, err := Split(identifier)
	if err != nil {
		return FieldSet{}, err
	}

	var f FieldSet
	for _, c := range Categories() {
		if err := checkSegment(c.Key(), parts[c]); err != nil {
			return FieldSet{}, err
		}
		f.setCategorical(c, parts[c])
	}

	if len(parts[segmentNumero]) != NumberWidth {
		return FieldSet{}, &ValidationError{Field: "numero", Value: parts[segmentNumero], Err: ErrInvalidNumber}
	}
	if f.Numero, err = FormatNumber(parts[segmentNumero]); err != nil {
		return FieldSet{}, err
	}

	if f.Data, err = time.Parse(DateLayout, parts[segmentData]); err != nil {
		return FieldSet{}, &ValidationError{Field: "data", Value: parts[segmentData], Err: ErrInvalidDate}
	}

	if err := checkSegment("versao", parts[segmentVersao]); err != nil {
		return FieldSet{}, err
	}
	f.Versao = parts[segmentVersao]

	return f, nil
}

// NumberOf extrai o segmento do número sequencial de um código bem formado
func NumberOf(identifier string) (string, error) {
	parts, err := Split(identifier)
	if err != nil {
		return "", err
	}
	return parts[segmentNumero], nil
}

// ValidateSegment verifica se v pode ocupar um segmento do código:
// não vazio e sem o separador
func ValidateSegment(field, v string) error {
	return checkSegment(field, v)
}

func checkSegment(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return &ValidationError{Field: field, Err: ErrEmptyField}
	}
	if strings.Contains(v, Separator) {
		return &ValidationError{Field: field, Value: v, Err: ErrInvalidSegment}
	}
	return nil
}
