// Package seed cadastra o dicionário padrão de opções.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
)

//go:embed dicionario.yaml
var defaultDictionary []byte

type entry struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Default devolve o dicionário padrão embutido
func Default() (map[codigo.Category][]codigo.CategoryOption, error) {
	return Parse(defaultDictionary)
}

// Parse lê um dicionário em YAML. Categorias desconhecidas são erro.
func Parse(data []byte) (map[codigo.Category][]codigo.CategoryOption, error) {
	var raw map[string][]entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("erro ao ler dicionário: %w", err)
	}

	out := make(map[codigo.Category][]codigo.CategoryOption, len(raw))
	for key, entries := range raw {
		category, err := codigo.ParseCategory(key)
		if err != nil {
			return nil, fmt.Errorf("dicionário inválido: %w", err)
		}
		for _, e := range entries {
			if e.Value == "" || e.Label == "" {
				return nil, fmt.Errorf("dicionário inválido: opção sem valor ou rótulo em %s", key)
			}
			out[category] = append(out[category], codigo.CategoryOption{
				Category: category,
				Value:    e.Value,
				Label:    e.Label,
				Active:   true,
			})
		}
	}
	return out, nil
}

// Result resume uma execução do seed
type Result struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Seed cadastra as opções que ainda não existem. Opções já presentes, ativas
// ou desativadas, são mantidas como estão.
func Seed(ctx context.Context, store repository.OptionStore, dict map[codigo.Category][]codigo.CategoryOption, logger *zap.Logger) (Result, error) {
	var created, skipped atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(3)
	for category, options := range dict {
		g.Go(func() error {
			existing, err := store.ListOptions(ctx, category)
			if err != nil {
				return fmt.Errorf("erro ao listar %s: %w", category.Key(), err)
			}
			present := make(map[string]struct{}, len(existing))
			for _, opt := range existing {
				present[opt.Value] = struct{}{}
			}

			for _, opt := range options {
				if _, ok := present[opt.Value]; ok {
					skipped.Add(1)
					continue
				}
				if _, err := store.RegisterOption(ctx, opt); err != nil {
					if errors.Is(err, repository.ErrDuplicateOption) {
						skipped.Add(1)
						continue
					}
					return fmt.Errorf("erro ao cadastrar %s/%s: %w", category.Key(), opt.Value, err)
				}
				created.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	result := Result{Created: int(created.Load()), Skipped: int(skipped.Load())}
	logger.Info("Dicionário padrão aplicado",
		zap.Int("criadas", result.Created),
		zap.Int("existentes", result.Skipped),
		zap.Error(err),
	)
	return result, err
}
