package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/utils"
)

// OptionService gerencia o dicionário de opções por categoria
type OptionService struct {
	store  repository.OptionStore
	logger *zap.Logger
}

// NewOptionService cria uma nova instância do OptionService
func NewOptionService(store repository.OptionStore, logger *zap.Logger) *OptionService {
	return &OptionService{
		store:  store,
		logger: logger.Named("opcoes"),
	}
}

// ListActive retorna as opções ativas da categoria ordenadas pelo rótulo
func (s *OptionService) ListActive(ctx context.Context, category codigo.Category) ([]codigo.CategoryOption, error) {
	all, err := s.store.ListOptions(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções de %s: %w", category.Key(), err)
	}
	active := codigo.ActiveOnly(all)
	codigo.SortByLabel(active)
	return active, nil
}

// Snapshot lê as opções ativas das nove categorias. Não há cache: cada
// chamada reflete o armazenamento naquele momento.
func (s *OptionService) Snapshot(ctx context.Context) (codigo.Dictionary, error) {
	return s.dictionary(ctx, true)
}

// LegendDictionary inclui as opções desativadas, para que códigos antigos
// continuem com legenda completa
func (s *OptionService) LegendDictionary(ctx context.Context) (codigo.Dictionary, error) {
	return s.dictionary(ctx, false)
}

func (s *OptionService) dictionary(ctx context.Context, activeOnly bool) (codigo.Dictionary, error) {
	dict := make(codigo.Dictionary, len(codigo.Categories()))
	for _, c := range codigo.Categories() {
		opts, err := s.store.ListOptions(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar opções de %s: %w", c.Key(), err)
		}
		if activeOnly {
			opts = codigo.ActiveOnly(opts)
		}
		dict[c] = opts
	}
	return dict, nil
}

// Register cadastra uma opção na categoria. Uma opção desativada com o mesmo
// valor só é reativada quando o rótulo também é o mesmo; o rótulo gravado não
// muda, para não alterar a legenda dos códigos já emitidos.
func (s *OptionService) Register(ctx context.Context, category codigo.Category, value, label string) (codigo.CategoryOption, error) {
	value = strings.TrimSpace(value)
	label = strings.TrimSpace(label)

	if err := codigo.ValidateSegment("value", value); err != nil {
		return codigo.CategoryOption{}, err
	}
	if label == "" {
		return codigo.CategoryOption{}, &codigo.ValidationError{Field: "label", Err: codigo.ErrEmptyField}
	}

	opt, err := s.store.RegisterOption(ctx, codigo.CategoryOption{
		Category: category,
		Value:    value,
		Label:    label,
		Active:   true,
	})
	if err != nil {
		return codigo.CategoryOption{}, err
	}

	s.logger.Info("Opção cadastrada",
		zap.String("categoria", category.Key()),
		zap.String("valor", value),
	)
	return opt, nil
}

// Deactivate desativa a opção; códigos já emitidos continuam válidos
func (s *OptionService) Deactivate(ctx context.Context, category codigo.Category, value string) error {
	if err := s.store.DeactivateOption(ctx, category, value); err != nil {
		return err
	}
	s.logger.Info("Opção desativada",
		zap.String("categoria", category.Key()),
		zap.String("valor", value),
	)
	return nil
}

// AddContractor cadastra um contratante a partir do nome completo.
//
// A abreviação é gerada automaticamente. Se já existe contratante ativo com o
// mesmo rótulo, ele é devolvido com created=false. Um contratante desativado de
// mesmo rótulo é reativado. Uma abreviação já usada por outro contratante,
// ativo ou não, resulta em repository.ErrDuplicateOption.
func (s *OptionService) AddContractor(ctx context.Context, fullName string) (opt codigo.CategoryOption, created bool, err error) {
	abbreviation, err := codigo.Abbreviate(fullName)
	if err != nil {
		return codigo.CategoryOption{}, false, err
	}
	label := codigo.ContractorLabel(abbreviation, fullName)

	current, err := s.ListActive(ctx, codigo.CategoryContratante)
	if err != nil {
		return codigo.CategoryOption{}, false, err
	}
	for _, existing := range current {
		if utils.MesmoRotulo(existing.Label, label) {
			return existing, false, nil
		}
	}

	opt, err = s.store.RegisterOption(ctx, codigo.CategoryOption{
		Category: codigo.CategoryContratante,
		Value:    abbreviation,
		Label:    label,
		Active:   true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateOption) {
			s.logger.Warn("Abreviação já usada por outro contratante",
				zap.String("abreviacao", abbreviation),
				zap.String("nome", fullName),
			)
		}
		return codigo.CategoryOption{}, false, err
	}

	contractorsRegistered.Inc()
	s.logger.Info("Contratante cadastrado", zap.String("rotulo", label))
	return opt, true, nil
}
