// Package memory implementa repository.Store em memória, com as mesmas regras
// de unicidade dos backends persistentes. Usado em testes e execuções efêmeras.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/utils"
)

type optionKey struct {
	category codigo.Category
	value    string
}

// Store guarda códigos e opções em mapas protegidos por mutex
type Store struct {
	mu       sync.RWMutex
	codes    map[string]codigo.IssuedCode
	byNumber map[string]string
	options  map[optionKey]codigo.CategoryOption
	now      func() time.Time
}

// New cria um Store vazio
func New() *Store {
	return &Store{
		codes:    make(map[string]codigo.IssuedCode),
		byNumber: make(map[string]string),
		options:  make(map[optionKey]codigo.CategoryOption),
		now:      time.Now,
	}
}

var _ repository.Store = (*Store)(nil)

func (s *Store) ListNumbers(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	numbers := make([]string, 0, len(s.byNumber))
	for n := range s.byNumber {
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func (s *Store) InsertCode(_ context.Context, code codigo.IssuedCode) (codigo.IssuedCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byNumber[code.Numero]; taken {
		return codigo.IssuedCode{}, fmt.Errorf("%w: %s", repository.ErrDuplicateNumber, code.Numero)
	}
	if code.ID == "" {
		code.ID = uuid.NewString()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = s.now().UTC()
	}

	s.codes[code.ID] = code
	s.byNumber[code.Numero] = code.ID
	return code, nil
}

func (s *Store) DeleteCode(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.codes[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(s.codes, id)
	delete(s.byNumber, code.Numero)
	return nil
}

func (s *Store) GetCode(_ context.Context, id string) (codigo.IssuedCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code, ok := s.codes[id]
	if !ok {
		return codigo.IssuedCode{}, repository.ErrNotFound
	}
	return code, nil
}

func (s *Store) ListCodes(_ context.Context, limit, offset int) ([]codigo.IssuedCode, error) {
	s.mu.RLock()
	all := make([]codigo.IssuedCode, 0, len(s.codes))
	for _, c := range s.codes {
		all = append(all, c)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].Numero > all[j].Numero
	})

	if offset >= len(all) {
		return []codigo.IssuedCode{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (s *Store) CountCodes(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.codes), nil
}

func (s *Store) ListOptions(_ context.Context, category codigo.Category) ([]codigo.CategoryOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []codigo.CategoryOption
	for k, opt := range s.options {
		if k.category == category {
			out = append(out, opt)
		}
	}
	return out, nil
}

func (s *Store) RegisterOption(_ context.Context, opt codigo.CategoryOption) (codigo.CategoryOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := optionKey{opt.Category, opt.Value}
	if existing, ok := s.options[key]; ok {
		if existing.Active {
			return codigo.CategoryOption{}, fmt.Errorf("%w: %s/%s", repository.ErrDuplicateOption, opt.Category.Key(), opt.Value)
		}
		if !utils.MesmoRotulo(existing.Label, opt.Label) {
			return codigo.CategoryOption{}, fmt.Errorf("%w: %s/%s desativada com outro rótulo", repository.ErrDuplicateOption, opt.Category.Key(), opt.Value)
		}
		existing.Active = true
		s.options[key] = existing
		return existing, nil
	}

	opt.Active = true
	if opt.CreatedAt.IsZero() {
		opt.CreatedAt = s.now().UTC()
	}
	s.options[key] = opt
	return opt, nil
}

func (s *Store) DeactivateOption(_ context.Context, category codigo.Category, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := optionKey{category, value}
	opt, ok := s.options[key]
	if !ok || !opt.Active {
		return repository.ErrNotFound
	}
	opt.Active = false
	s.options[key] = opt
	return nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }
