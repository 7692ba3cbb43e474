package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// GenerateRequest são os dados para emitir um novo código. Fields.Numero vazio
// pede alocação automática; Versao e Data vazios assumem R0 e a data atual.
type GenerateRequest struct {
	Name   string
	Fields codigo.FieldSet
}

// Author identifica quem emitiu o código
type Author struct {
	ID   string
	Name string
}

// Page é uma página da listagem de códigos
type Page struct {
	Items  []codigo.IssuedCode `json:"items"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// CodeService emite, lista e exclui códigos de projeto
type CodeService struct {
	codes   repository.CodeRegistry
	options *OptionService
	cfg     config.AllocationConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewCodeService cria uma nova instância do CodeService
func NewCodeService(codes repository.CodeRegistry, options *OptionService, cfg config.AllocationConfig, logger *zap.Logger) *CodeService {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &CodeService{
		codes:   codes,
		options: options,
		cfg:     cfg,
		logger:  logger.Named("codigos"),
		now:     time.Now,
	}
}

// Generate valida a requisição contra o dicionário atual, define o número
// sequencial e grava o código.
//
// Um número informado pelo usuário é gravado uma única vez e um conflito
// volta como repository.ErrDuplicateNumber. Na alocação automática cada
// tentativa relê os números em uso; só o conflito de número é repetido, e o
// esgotamento das tentativas resulta em ErrAllocationConflict.
func (s *CodeService) Generate(ctx context.Context, req GenerateRequest, author Author) (codigo.IssuedCode, error) {
	ctx, span := otel.Tracer("codigos").Start(ctx, "GenerateCode")
	defer span.End()

	fields, err := s.prepare(ctx, req)
	if err != nil {
		span.RecordError(err)
		return codigo.IssuedCode{}, err
	}

	record := codigo.IssuedCode{
		Name:       strings.TrimSpace(req.Name),
		AuthorID:   author.ID,
		AuthorName: author.Name,
	}

	if fields.Numero != "" {
		span.SetAttributes(attribute.String("codigo.modo", "manual"))
		saved, err := s.insert(ctx, fields, record)
		if err != nil {
			span.RecordError(err)
			return codigo.IssuedCode{}, err
		}
		codesGenerated.WithLabelValues("manual").Inc()
		s.logIssued(saved)
		return saved, nil
	}

	span.SetAttributes(attribute.String("codigo.modo", "auto"))
	saved, attempts, err := s.allocate(ctx, fields, record)
	span.SetAttributes(attribute.Int("codigo.tentativas", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return codigo.IssuedCode{}, err
	}

	allocationAttempts.Observe(float64(attempts))
	codesGenerated.WithLabelValues("auto").Inc()
	s.logIssued(saved)
	return saved, nil
}

// prepare normaliza os campos e confere os valores categóricos contra as
// opções ativas
func (s *CodeService) prepare(ctx context.Context, req GenerateRequest) (codigo.FieldSet, error) {
	if strings.TrimSpace(req.Name) == "" {
		return codigo.FieldSet{}, &codigo.ValidationError{Field: "name", Err: codigo.ErrEmptyField}
	}

	fields := req.Fields
	if fields.Versao == "" {
		fields.Versao = codigo.DefaultVersion
	}
	if fields.Data.IsZero() {
		fields.Data = s.now()
	}
	if fields.Numero != "" {
		numero, err := codigo.FormatNumber(fields.Numero)
		if err != nil {
			return codigo.FieldSet{}, err
		}
		fields.Numero = numero
	}

	dict, err := s.options.Snapshot(ctx)
	if err != nil {
		return codigo.FieldSet{}, err
	}
	for _, c := range codigo.Categories() {
		v := fields.Categorical(c)
		if err := codigo.ValidateSegment(c.Key(), v); err != nil {
			return codigo.FieldSet{}, err
		}
		if !dict.Has(c, v) {
			return codigo.FieldSet{}, &UnknownOptionError{Category: c, Value: v}
		}
	}
	return fields, nil
}

func (s *CodeService) insert(ctx context.Context, fields codigo.FieldSet, record codigo.IssuedCode) (codigo.IssuedCode, error) {
	identifier, err := codigo.Encode(fields)
	if err != nil {
		return codigo.IssuedCode{}, err
	}
	record.Identifier = identifier
	record.Numero = fields.Numero
	return s.codes.InsertCode(ctx, record)
}

func (s *CodeService) allocate(ctx context.Context, fields codigo.FieldSet, record codigo.IssuedCode) (codigo.IssuedCode, int, error) {
	attempts := 0
	op := func() (codigo.IssuedCode, error) {
		attempts++
		ctx, span := otel.Tracer("codigos").Start(ctx, "AllocateNumber")
		defer span.End()
		span.SetAttributes(attribute.Int("codigo.tentativa", attempts))

		numbers, err := s.codes.ListNumbers(ctx)
		if err != nil {
			return codigo.IssuedCode{}, backoff.Permanent(fmt.Errorf("erro ao listar números em uso: %w", err))
		}
		numero, err := codigo.NextNumber(numbers)
		if err != nil {
			return codigo.IssuedCode{}, backoff.Permanent(err)
		}
		span.SetAttributes(attribute.String("codigo.numero", numero))

		attempt := fields
		attempt.Numero = numero
		saved, err := s.insert(ctx, attempt, record)
		if errors.Is(err, repository.ErrDuplicateNumber) {
			allocationConflicts.Inc()
			return codigo.IssuedCode{}, err
		}
		if err != nil {
			return codigo.IssuedCode{}, backoff.Permanent(err)
		}
		return saved, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.InitialBackoff
	b.MaxInterval = s.cfg.MaxBackoff

	saved, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(s.cfg.MaxAttempts)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			s.logger.Debug("Número já utilizado, nova tentativa",
				zap.Int("tentativa", attempts),
				zap.Duration("espera", wait),
				zap.Error(err),
			)
		}),
	)
	if errors.Is(err, repository.ErrDuplicateNumber) {
		s.logger.Warn("Alocação esgotou as tentativas", zap.Int("tentativas", attempts))
		return codigo.IssuedCode{}, attempts, fmt.Errorf("%w após %d tentativas", ErrAllocationConflict, attempts)
	}
	return saved, attempts, err
}

func (s *CodeService) logIssued(code codigo.IssuedCode) {
	s.logger.Info("Código emitido",
		zap.String("codigo", code.Identifier),
		zap.String("numero", code.Numero),
		zap.String("autor", code.AuthorName),
	)
}

// NextNumber calcula o próximo número livre sem reservá-lo
func (s *CodeService) NextNumber(ctx context.Context) (string, error) {
	numbers, err := s.codes.ListNumbers(ctx)
	if err != nil {
		return "", fmt.Errorf("erro ao listar números em uso: %w", err)
	}
	return codigo.NextNumber(numbers)
}

// Get busca um código pelo id
func (s *CodeService) Get(ctx context.Context, id string) (codigo.IssuedCode, error) {
	return s.codes.GetCode(ctx, id)
}

// List lista os códigos do mais recente para o mais antigo. Todos os usuários
// veem todos os códigos.
func (s *CodeService) List(ctx context.Context, limit, offset int) (Page, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.codes.ListCodes(ctx, limit, offset)
	if err != nil {
		return Page{}, fmt.Errorf("erro ao listar códigos: %w", err)
	}
	total, err := s.codes.CountCodes(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("erro ao contar códigos: %w", err)
	}
	if items == nil {
		items = []codigo.IssuedCode{}
	}
	return Page{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// Delete exclui o código e libera o número para novas alocações
func (s *CodeService) Delete(ctx context.Context, id string) error {
	if err := s.codes.DeleteCode(ctx, id); err != nil {
		return err
	}
	codesDeleted.Inc()
	s.logger.Info("Código excluído", zap.String("id", id))
	return nil
}

// Legend monta a legenda de um código gravado
func (s *CodeService) Legend(ctx context.Context, id string) (codigo.IssuedCode, []codigo.LegendItem, error) {
	code, err := s.codes.GetCode(ctx, id)
	if err != nil {
		return codigo.IssuedCode{}, nil, err
	}
	items, err := s.LegendFor(ctx, code.Identifier)
	if err != nil {
		return codigo.IssuedCode{}, nil, err
	}
	return code, items, nil
}

// LegendFor monta a legenda de qualquer código digitado. Um código malformado
// não é erro: a legenda traz a linha de erro.
func (s *CodeService) LegendFor(ctx context.Context, identifier string) ([]codigo.LegendItem, error) {
	dict, err := s.options.LegendDictionary(ctx)
	if err != nil {
		return nil, err
	}
	return codigo.DecodeToLegend(strings.TrimSpace(identifier), dict), nil
}
