// Package sqlite implementa repository.Store sobre um arquivo SQLite
// (driver modernc.org/sqlite, sem cgo). Indicado para a CLI e instalações de
// um único nó.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/sqlite/migrations"
	"github.com/a2z-projetos/app-codigos-projeto/internal/utils"
)

// Store guarda códigos e opções em um banco SQLite
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

var _ repository.Store = (*Store)(nil)

// NewStore abre (ou cria) o banco em path e aplica as migrações pendentes
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório do banco: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco sqlite: %w", err)
	}
	// Uma única conexão serializa as escritas do arquivo
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, logger: logger}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	logger.Info("Banco SQLite aberto", zap.String("path", path))
	return s, nil
}

// Path devolve o caminho do arquivo do banco
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("erro ao criar schema_migrations: %w", err)
	}

	var current int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("erro ao ler versão do esquema: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("erro ao listar migrações: %w", err)
	}
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil || version <= current {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("erro ao ler migração %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("erro ao executar migração %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("erro ao registrar migração %s: %w", name, err)
		}
		s.logger.Debug("Migração aplicada", zap.String("arquivo", name))
	}
	return nil
}

func (s *Store) ListNumbers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT numero FROM project_codes")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar números: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("erro ao ler número: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

func (s *Store) InsertCode(ctx context.Context, code codigo.IssuedCode) (codigo.IssuedCode, error) {
	if code.ID == "" {
		code.ID = uuid.NewString()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO project_codes (id, name, code, numero, user_id, user_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		code.ID, code.Name, code.Identifier, code.Numero, code.AuthorID, code.AuthorName,
		code.CreatedAt.UnixNano(),
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
	res, err := s.db.ExecContext(ctx, "DELETE FROM project_codes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir código: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

const codeColumns = "id, name, code, numero, user_id, user_name, created_at"

func scanCode(row interface{ Scan(...any) error }) (codigo.IssuedCode, error) {
	var (
		c       codigo.IssuedCode
		created int64
	)
	err := row.Scan(&c.ID, &c.Name, &c.Identifier, &c.Numero, &c.AuthorID, &c.AuthorName, &created)
	if err != nil {
		return codigo.IssuedCode{}, err
	}
	c.CreatedAt = time.Unix(0, created).UTC()
	return c, nil
}

func (s *Store) GetCode(ctx context.Context, id string) (codigo.IssuedCode, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+codeColumns+" FROM project_codes WHERE id = ?", id)
	c, err := scanCode(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return codigo.IssuedCode{}, repository.ErrNotFound
		}
		return codigo.IssuedCode{}, fmt.Errorf("erro ao buscar código: %w", err)
	}
	return c, nil
}

func (s *Store) ListCodes(ctx context.Context, limit, offset int) ([]codigo.IssuedCode, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+codeColumns+" FROM project_codes ORDER BY created_at DESC, numero DESC LIMIT ? OFFSET ?",
		limit, offset)
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
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM project_codes").Scan(&n); err != nil {
		return 0, fmt.Errorf("erro ao contar códigos: %w", err)
	}
	return n, nil
}

func (s *Store) ListOptions(ctx context.Context, category codigo.Category) ([]codigo.CategoryOption, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT value, label, is_active, created_at FROM code_options WHERE category = ?",
		category.Key())
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções: %w", err)
	}
	defer rows.Close()

	var opts []codigo.CategoryOption
	for rows.Next() {
		opt := codigo.CategoryOption{Category: category}
		var created int64
		if err := rows.Scan(&opt.Value, &opt.Label, &opt.Active, &created); err != nil {
			return nil, fmt.Errorf("erro ao ler opção: %w", err)
		}
		opt.CreatedAt = time.Unix(0, created).UTC()
		opts = append(opts, opt)
	}
	return opts, rows.Err()
}

func (s *Store) RegisterOption(ctx context.Context, opt codigo.CategoryOption) (codigo.CategoryOption, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return codigo.CategoryOption{}, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var (
		label   string
		active  bool
		created int64
	)
	err = tx.QueryRowContext(ctx,
		"SELECT label, is_active, created_at FROM code_options WHERE category = ? AND value = ?",
		opt.Category.Key(), opt.Value).Scan(&label, &active, &created)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if opt.CreatedAt.IsZero() {
			opt.CreatedAt = time.Now().UTC()
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO code_options (category, value, label, is_active, created_at) VALUES (?, ?, ?, 1, ?)",
			opt.Category.Key(), opt.Value, opt.Label, opt.CreatedAt.UnixNano())
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
		_, err = tx.ExecContext(ctx,
			"UPDATE code_options SET is_active = 1 WHERE category = ? AND value = ?",
			opt.Category.Key(), opt.Value)
		if err != nil {
			return codigo.CategoryOption{}, fmt.Errorf("erro ao reativar opção: %w", err)
		}
		opt.Label = label
		opt.CreatedAt = time.Unix(0, created).UTC()
	}

	if err := tx.Commit(); err != nil {
		return codigo.CategoryOption{}, fmt.Errorf("erro ao confirmar transação: %w", err)
	}
	opt.Active = true
	return opt, nil
}

func (s *Store) DeactivateOption(ctx context.Context, category codigo.Category, value string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE code_options SET is_active = 0 WHERE category = ? AND value = ? AND is_active = 1",
		category.Key(), value)
	if err != nil {
		return fmt.Errorf("erro ao desativar opção: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// isUniqueViolation verifica se o erro é violação de UNIQUE ou PRIMARY KEY
func isUniqueViolation(err error) bool {
	var sqlErr *sqlite.Error
	if errors.As(err, &sqlErr) {
		switch sqlErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
