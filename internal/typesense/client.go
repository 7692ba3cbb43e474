// Package typesense implementa repository.Store sobre coleções do Typesense.
//
// A unicidade vem do id do documento: códigos usam id = numero e opções usam
// id = <categoria>__<valor codificado>. O Typesense recusa um id existente com
// HTTP 409, traduzido para os erros de duplicidade do repositório.
package typesense

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/utils"
)

// Nomes das coleções
const (
	CodesCollection   = "project_codes"
	OptionsCollection = "code_options"
)

// perPageLimit é o máximo de documentos por página aceito pelo Typesense
const perPageLimit = 250

type Client struct {
	client *typesense.Client
	logger *zap.Logger
}

var _ repository.Store = (*Client)(nil)

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	typesenseClient := typesense.NewClient(
		typesense.WithServer(cfg.TypesenseServerURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
	)

	return &Client{
		client: typesenseClient,
		logger: logger,
	}
}

// codeDocument é a forma persistida de codigo.IssuedCode
type codeDocument struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Numero    string `json:"numero"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	CreatedAt int64  `json:"created_at"`
}

type optionDocument struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

func codeToDocument(code codigo.IssuedCode) codeDocument {
	return codeDocument{
		ID:        code.Numero,
		Name:      code.Name,
		Code:      code.Identifier,
		Numero:    code.Numero,
		UserID:    code.AuthorID,
		UserName:  code.AuthorName,
		CreatedAt: code.CreatedAt.UnixMilli(),
	}
}

func (d codeDocument) toCode() codigo.IssuedCode {
	return codigo.IssuedCode{
		ID:         d.ID,
		Name:       d.Name,
		Identifier: d.Code,
		Numero:     d.Numero,
		AuthorID:   d.UserID,
		AuthorName: d.UserName,
		CreatedAt:  time.UnixMilli(d.CreatedAt).UTC(),
	}
}

// optionID monta o id do documento da opção. O valor é codificado para que
// caracteres como "/" não quebrem o caminho da API.
func optionID(category codigo.Category, value string) string {
	return category.Key() + "__" + base64.RawURLEncoding.EncodeToString([]byte(value))
}

func optionToDocument(opt codigo.CategoryOption) optionDocument {
	return optionDocument{
		ID:        optionID(opt.Category, opt.Value),
		Category:  opt.Category.Key(),
		Value:     opt.Value,
		Label:     opt.Label,
		IsActive:  opt.Active,
		CreatedAt: opt.CreatedAt.UnixMilli(),
	}
}

func (d optionDocument) toOption() (codigo.CategoryOption, error) {
	category, err := codigo.ParseCategory(d.Category)
	if err != nil {
		return codigo.CategoryOption{}, err
	}
	return codigo.CategoryOption{
		Category:  category,
		Value:     d.Value,
		Label:     d.Label,
		Active:    d.IsActive,
		CreatedAt: time.UnixMilli(d.CreatedAt).UTC(),
	}, nil
}

// toMap converte um documento para o formato aceito pelo cliente
func toMap(v any) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar documento: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("erro ao deserializar documento: %v", err)
	}
	return m, nil
}

// decode reinterpreta uma resposta do Typesense na struct de destino
func decode(src any, dst any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("erro ao serializar resultado: %v", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("erro ao deserializar resultado: %v", err)
	}
	return nil
}

// hasStatus verifica o status HTTP de um erro do Typesense
func hasStatus(err error, status int) bool {
	var httpErr *typesense.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status == status
	}
	return strings.Contains(err.Error(), fmt.Sprintf("status: %d", status))
}

// EnsureCollections cria as coleções que ainda não existem
func (c *Client) EnsureCollections(ctx context.Context) error {
	schemas := []*api.CollectionSchema{
		{
			Name: CodesCollection,
			Fields: []api.Field{
				{Name: "name", Type: "string"},
				{Name: "code", Type: "string"},
				{Name: "numero", Type: "string", Facet: pointer.True()},
				{Name: "user_id", Type: "string", Optional: pointer.True()},
				{Name: "user_name", Type: "string", Optional: pointer.True()},
				{Name: "created_at", Type: "int64", Sort: pointer.True()},
			},
			DefaultSortingField: pointer.String("created_at"),
		},
		{
			Name: OptionsCollection,
			Fields: []api.Field{
				{Name: "category", Type: "string", Facet: pointer.True()},
				{Name: "value", Type: "string"},
				{Name: "label", Type: "string"},
				{Name: "is_active", Type: "bool", Facet: pointer.True()},
				{Name: "created_at", Type: "int64", Sort: pointer.True()},
			},
			DefaultSortingField: pointer.String("created_at"),
		},
	}

	for _, schema := range schemas {
		_, err := c.client.Collection(schema.Name).Retrieve(ctx)
		if err == nil {
			continue
		}
		if !hasStatus(err, http.StatusNotFound) {
			return fmt.Errorf("erro ao verificar coleção %s: %w", schema.Name, err)
		}

		c.logger.Info("Coleção não existe, criando", zap.String("collection", schema.Name))
		if _, err := c.client.Collections().Create(ctx, schema); err != nil && !hasStatus(err, http.StatusConflict) {
			return fmt.Errorf("erro ao criar coleção %s: %w", schema.Name, err)
		}
	}
	return nil
}

// searchAll percorre todas as páginas de uma busca e devolve os documentos
func (c *Client) searchAll(ctx context.Context, collection string, params *api.SearchCollectionParams, each func(json.RawMessage) error) error {
	page := 1
	for {
		params.Page = pointer.Int(page)
		params.PerPage = pointer.Int(perPageLimit)

		result, err := c.client.Collection(collection).Documents().Search(ctx, params)
		if err != nil {
			return fmt.Errorf("erro ao buscar em %s: %w", collection, err)
		}

		var parsed struct {
			Hits []struct {
				Document json.RawMessage `json:"document"`
			} `json:"hits"`
		}
		if err := decode(result, &parsed); err != nil {
			return err
		}
		for _, hit := range parsed.Hits {
			if err := each(hit.Document); err != nil {
				return err
			}
		}

		if len(parsed.Hits) < perPageLimit {
			return nil
		}
		page++
	}
}

func (c *Client) ListNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	params := &api.SearchCollectionParams{
		Q:             pointer.String("*"),
		IncludeFields: pointer.String("numero"),
	}
	err := c.searchAll(ctx, CodesCollection, params, func(raw json.RawMessage) error {
		var doc codeDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("erro ao ler documento: %v", err)
		}
		numbers = append(numbers, doc.Numero)
		return nil
	})
	return numbers, err
}

func (c *Client) InsertCode(ctx context.Context, code codigo.IssuedCode) (codigo.IssuedCode, error) {
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}
	doc := codeToDocument(code)
	m, err := toMap(doc)
	if err != nil {
		return codigo.IssuedCode{}, err
	}

	_, err = c.client.Collection(CodesCollection).Documents().Create(ctx, m, &api.DocumentIndexParameters{})
	if err != nil {
		if hasStatus(err, http.StatusConflict) {
			return codigo.IssuedCode{}, fmt.Errorf("%w: %s", repository.ErrDuplicateNumber, code.Numero)
		}
		return codigo.IssuedCode{}, fmt.Errorf("erro ao gravar código: %w", err)
	}
	return doc.toCode(), nil
}

func (c *Client) DeleteCode(ctx context.Context, id string) error {
	if _, err := c.client.Collection(CodesCollection).Document(id).Delete(ctx); err != nil {
		if hasStatus(err, http.StatusNotFound) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("erro ao excluir código: %w", err)
	}
	return nil
}

func (c *Client) GetCode(ctx context.Context, id string) (codigo.IssuedCode, error) {
	result, err := c.client.Collection(CodesCollection).Document(id).Retrieve(ctx)
	if err != nil {
		if hasStatus(err, http.StatusNotFound) {
			return codigo.IssuedCode{}, repository.ErrNotFound
		}
		return codigo.IssuedCode{}, fmt.Errorf("erro ao buscar código: %w", err)
	}
	var doc codeDocument
	if err := decode(result, &doc); err != nil {
		return codigo.IssuedCode{}, err
	}
	return doc.toCode(), nil
}

// ListCodes carrega todos os códigos e pagina em memória, pois o Typesense
// pagina apenas por página e não por deslocamento
func (c *Client) ListCodes(ctx context.Context, limit, offset int) ([]codigo.IssuedCode, error) {
	var all []codigo.IssuedCode
	params := &api.SearchCollectionParams{
		Q:      pointer.String("*"),
		SortBy: pointer.String("created_at:desc"),
	}
	err := c.searchAll(ctx, CodesCollection, params, func(raw json.RawMessage) error {
		var doc codeDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("erro ao ler documento: %v", err)
		}
		all = append(all, doc.toCode())
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
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

func (c *Client) CountCodes(ctx context.Context) (int, error) {
	result, err := c.client.Collection(CodesCollection).Documents().Search(ctx, &api.SearchCollectionParams{
		Q:       pointer.String("*"),
		PerPage: pointer.Int(0),
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao contar códigos: %w", err)
	}
	var parsed struct {
		Found int `json:"found"`
	}
	if err := decode(result, &parsed); err != nil {
		return 0, err
	}
	return parsed.Found, nil
}

func (c *Client) ListOptions(ctx context.Context, category codigo.Category) ([]codigo.CategoryOption, error) {
	var opts []codigo.CategoryOption
	params := &api.SearchCollectionParams{
		Q:        pointer.String("*"),
		FilterBy: pointer.String(fmt.Sprintf("category:=%s", category.Key())),
	}
	err := c.searchAll(ctx, OptionsCollection, params, func(raw json.RawMessage) error {
		var doc optionDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("erro ao ler documento: %v", err)
		}
		opt, err := doc.toOption()
		if err != nil {
			c.logger.Warn("Opção com categoria desconhecida ignorada", zap.String("id", doc.ID), zap.Error(err))
			return nil
		}
		opts = append(opts, opt)
		return nil
	})
	return opts, err
}

func (c *Client) retrieveOption(ctx context.Context, category codigo.Category, value string) (*optionDocument, error) {
	result, err := c.client.Collection(OptionsCollection).Document(optionID(category, value)).Retrieve(ctx)
	if err != nil {
		if hasStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar opção: %w", err)
	}
	var doc optionDocument
	if err := decode(result, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) upsertOption(ctx context.Context, doc optionDocument) error {
	m, err := toMap(doc)
	if err != nil {
		return err
	}
	if _, err := c.client.Collection(OptionsCollection).Documents().Upsert(ctx, m, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("erro ao gravar opção: %w", err)
	}
	return nil
}

func (c *Client) RegisterOption(ctx context.Context, opt codigo.CategoryOption) (codigo.CategoryOption, error) {
	existing, err := c.retrieveOption(ctx, opt.Category, opt.Value)
	if err != nil {
		return codigo.CategoryOption{}, err
	}

	opt.Active = true
	if existing != nil {
		if existing.IsActive {
			return codigo.CategoryOption{}, fmt.Errorf("%w: %s/%s", repository.ErrDuplicateOption, opt.Category.Key(), opt.Value)
		}
		if !utils.MesmoRotulo(existing.Label, opt.Label) {
			return codigo.CategoryOption{}, fmt.Errorf("%w: %s/%s desativada com outro rótulo", repository.ErrDuplicateOption, opt.Category.Key(), opt.Value)
		}
		opt.Label = existing.Label
		opt.CreatedAt = time.UnixMilli(existing.CreatedAt).UTC()
		if err := c.upsertOption(ctx, optionToDocument(opt)); err != nil {
			return codigo.CategoryOption{}, err
		}
		return opt, nil
	}

	if opt.CreatedAt.IsZero() {
		opt.CreatedAt = time.Now().UTC()
	}
	doc := optionToDocument(opt)
	m, err := toMap(doc)
	if err != nil {
		return codigo.CategoryOption{}, err
	}
	if _, err := c.client.Collection(OptionsCollection).Documents().Create(ctx, m, &api.DocumentIndexParameters{}); err != nil {
		if hasStatus(err, http.StatusConflict) {
			return codigo.CategoryOption{}, fmt.Errorf("%w: %s/%s", repository.ErrDuplicateOption, opt.Category.Key(), opt.Value)
		}
		return codigo.CategoryOption{}, fmt.Errorf("erro ao gravar opção: %w", err)
	}
	return doc.toOption()
}

func (c *Client) DeactivateOption(ctx context.Context, category codigo.Category, value string) error {
	existing, err := c.retrieveOption(ctx, category, value)
	if err != nil {
		return err
	}
	if existing == nil || !existing.IsActive {
		return repository.ErrNotFound
	}
	existing.IsActive = false
	return c.upsertOption(ctx, *existing)
}

func (c *Client) Ping(ctx context.Context) error {
	healthy, err := c.client.Health(ctx, 2*time.Second)
	if err != nil {
		return err
	}
	if !healthy {
		return errors.New("typesense indisponível")
	}
	return nil
}

func (c *Client) Close() error { return nil }
