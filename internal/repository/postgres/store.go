package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/utils"
)

// DBTX é implementada por *pgxpool.Pool e pgx.Tx, permitindo rodar as mesmas
// consultas dentro ou fora de uma transação
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implementa repository.Store sobre um pool pgx
type Store struct {
	pool *pgxpool.Pool
	db   DBTX
}

var _ repository.Store = (*Store)(nil)

// NewStore cria o Store. O pool passa a pertencer ao Store e é fechado em Close.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, db: pool}
}

func (s *Store) ListNumbers(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT numero FROM project_codes`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar números: %w", err)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler números: %w", err)
	}
	return numbers, nil
}

func (s *Store) InsertCode(ctx context.Context, code codigo.IssuedCode) (codigo.IssuedCode, error) {
	if code.ID == "" {
		code.ID = uuid.NewString()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO project_codes (id, name, code, numero, user_id, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.Exec(ctx, query,
		code.ID, code.Name, code.Identifier, code.Numero, code.AuthorID, code.AuthorName, code.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return codigo.IssuedCode{}, fmt.Errorf("%w: %s", repository.ErrDuplicateNumber, code.Numero)
		}
		return codigo.IssuedCode{}, fmt.Errorf("erro ao gravar código: %w", err)
	}
	return code, nil
}

func (s *Store) DeleteCode(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM project_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir código: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

const selectCode = `SELECT id::text, name, code, numero, user_id, user_name, created_at FROM project_codes`

func scanCode(row pgx.Row) (codigo.IssuedCode, error) {
	var c codigo.IssuedCode
	err := row.Scan(&c.ID, &c.Name, &c.Identifier, &c.Numero, &c.AuthorID, &c.AuthorName, &c.CreatedAt)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, err
}

func (s *Store) GetCode(ctx context.Context, id string) (codigo.IssuedCode, error) {
	if _, err := uuid.Parse(id); err != nil {
		return codigo.IssuedCode{}, repository.ErrNotFound
	}
	c, err := scanCode(s.db.QueryRow(ctx, selectCode+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return codigo.IssuedCode{}, repository.ErrNotFound
		}
		return codigo.IssuedCode{}, fmt.Errorf("erro ao buscar código: %w", err)
	}
	return c, nil
}

func (s *Store) ListCodes(ctx context.Context, limit, offset int) ([]codigo.IssuedCode, error) {
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := s.db.Query(ctx,
		selectCode+` ORDER BY created_at DESC, numero DESC LIMIT $1 OFFSET $2`, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar códigos: %w", err)
	}
	defer rows.Close()

	codes := []codigo.IssuedCode{}
	for rows.Next() {
		c, err := scanCode(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler código: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func (s *Store) CountCodes(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM project_codes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("erro ao contar códigos: %w", err)
	}
	return n, nil
}

func (s *Store) ListOptions(ctx context.Context, category codigo.Category) ([]codigo.CategoryOption, error) {
	rows, err := s.db.Query(ctx,
		`SELECT value, label, is_active, created_at FROM code_options WHERE category = $1`, category.Key())
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções: %w", err)
	}
	defer rows.Close()

	var opts []codigo.CategoryOption
	for rows.Next() {
		opt := codigo.CategoryOption{Category: category}
		if err := rows.Scan(&opt.Value, &opt.Label, &opt.Active, &opt.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler opção: %w", err)
		}
		opts = append(opts, opt)
	}
	return opts, rows.Err()
}

// runInTx executa fn numa transação; erro em fn desfaz tudo
func (s *Store) runInTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // após o commit não faz nada

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// RegisterOption insere a opção ou reativa uma inativa de mesmo rótulo. A
// linha existente fica travada (FOR UPDATE) até o fim da transação.
func (s *Store) RegisterOption(ctx context.Context, opt codigo.CategoryOption) (codigo.CategoryOption, error) {
	var saved codigo.CategoryOption
	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		var err error
		saved, err = registerOption(ctx, tx, opt)
		return err
	})
	if err != nil {
		return codigo.CategoryOption{}, err
	}
	return saved, nil
}

func registerOption(ctx context.Context, db DBTX, opt codigo.CategoryOption) (codigo.CategoryOption, error) {
	var (
		label   string
		active  bool
		created time.Time
	)
	err := db.QueryRow(ctx,
		`SELECT label, is_active, created_at FROM code_options WHERE category = $1 AND value = $2 FOR UPDATE`,
		opt.Category.Key(), opt.Value).Scan(&label, &active, &created)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		err = db.QueryRow(ctx,
			`INSERT INTO code_options (category, value, label, is_active) VALUES ($1, $2, $3, TRUE) RETURNING created_at`,
			opt.Category.Key(), opt.Value, opt.Label).Scan(&opt.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return codigo.CategoryOption{}, fmt.Errorf("%w: %s/%s", repository.ErrDuplicateOption, opt.Category.Key(), opt.Value)
			}
			return codigo.CategoryOption{}, fmt.Errorf("erro ao gravar opção: %w", err)
		}
	case err != nil:
		return codigo.CategoryOption{}, fmt.Errorf("erro ao buscar opção: %w", err)
	case active:
		return codigo.CategoryOption{}, fmt.Errorf("%w: %s/%s", repository.ErrDuplicateOption, opt.Category.Key(), opt.Value)
	case !utils.MesmoRotulo(label, opt.Label):
		return codigo.CategoryOption{}, fmt.Errorf("%w: %s/%s desativada com outro rótulo", repository.ErrDuplicateOption, opt.Category.Key(), opt.Value)
	default:
		_, err = db.Exec(ctx,
			`UPDATE code_options SET is_active = TRUE WHERE category = $1 AND value = $2`,
			opt.Category.Key(), opt.Value)
		if err != nil {
			return codigo.CategoryOption{}, fmt.Errorf("erro ao reativar opção: %w", err)
		}
		opt.Label = label
		opt.CreatedAt = created
	}

	opt.CreatedAt = opt.CreatedAt.UTC()
	opt.Active = true
	return opt, nil
}

func (s *Store) DeactivateOption(ctx context.Context, category codigo.Category, value string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE code_options SET is_active = FALSE WHERE category = $1 AND value = $2 AND is_active`,
		category.Key(), value)
	if err != nil {
		return fmt.Errorf("erro ao desativar opção: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// isUniqueViolation verifica se o erro é violação de unicidade do PostgreSQL
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}
