package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/store/migrations"
)

// PostgresStore implements Store over PostgreSQL via database/sql (pgx stdlib).
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Open connects to the given DSN and applies pending migrations.
func Open(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := NewPostgresStore(db)
	if err := s.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return err
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) GetProfile(ctx context.Context, principalID string) (*ProfileRow, error) {
	query :=
		`SELECT id, email, full_name, status, preferences, last_login, created_at FROM profiles
		 WHERE id = $1
		 `

	var (
		p         ProfileRow
		prefs     []byte
		lastLogin sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, principalID).
		Scan(&p.ID, &p.Email, &p.FullName, &p.Status, &prefs, &lastLogin, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &p.Preferences); err != nil {
			return nil, fmt.Errorf("preferences decode error: %w", err)
		}
	}
	if lastLogin.Valid {
		p.LastLogin = lastLogin.Time
	}

	return &p, nil
}

func (s *PostgresStore) GetRole(ctx context.Context, principalID string) (models.Role, error) {
	query :=
		`SELECT role FROM user_roles
		 WHERE user_id = $1
		 `

	var role models.Role
	err := s.db.QueryRowContext(ctx, query, principalID).Scan(&role)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return role, nil
}

func (s *PostgresStore) GetDailyLimits(ctx context.Context, principalID string) (models.DailyLimits, error) {
	query :=
		`SELECT ai_analysis, chat_messages, exports FROM user_daily_limits
		 WHERE user_id = $1
		 `

	var l models.DailyLimits
	err := s.db.QueryRowContext(ctx, query, principalID).Scan(&l.AIAnalysis, &l.ChatMessages, &l.Exports)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailyLimits{}, common.ErrorNotFound
		}
		return models.DailyLimits{}, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (s *PostgresStore) GetDailyUsage(ctx context.Context, principalID, day string) (models.UsageCounts, error) {
	query :=
		`SELECT ai_analysis, chat_messages, exports FROM user_daily_usage
		 WHERE user_id = $1 AND usage_date = $2
		 `

	var u models.UsageCounts
	err := s.db.QueryRowContext(ctx, query, principalID, day).Scan(&u.AIAnalysis, &u.ChatMessages, &u.Exports)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UsageCounts{}, common.ErrorNotFound
		}
		return models.UsageCounts{}, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (s *PostgresStore) CreateDailyUsage(ctx context.Context, principalID, day string) error {
	query :=
		`INSERT INTO user_daily_usage (user_id, usage_date)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, usage_date) DO NOTHING
		 `

	if _, err := s.db.ExecContext(ctx, query, principalID, day); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// usageColumn maps a limit kind to its counter column. The whitelist keeps
// kind names out of SQL text construction.
func usageColumn(kind models.LimitKind) (string, error) {
	switch kind {
	case models.LimitAIAnalysis:
		return "ai_analysis", nil
	case models.LimitChatMessages:
		return "chat_messages", nil
	case models.LimitExports:
		return "exports", nil
	default:
		return "", fmt.Errorf("unknown limit kind %q", kind)
	}
}

func (s *PostgresStore) IncrementDailyUsage(ctx context.Context, principalID, day string, kind models.LimitKind) error {
	column, err := usageColumn(kind)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		insert :=
			`INSERT INTO user_daily_usage (user_id, usage_date)
			 VALUES ($1, $2)
			 ON CONFLICT (user_id, usage_date) DO NOTHING
			 `
		if _, err := tx.ExecContext(ctx, insert, principalID, day); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		update := fmt.Sprintf(
			`UPDATE user_daily_usage SET %s = %s + 1
			 WHERE user_id = $1 AND usage_date = $2
			 `, column, column)
		if _, err := tx.ExecContext(ctx, update, principalID, day); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (s *PostgresStore) UpdateLastLogin(ctx context.Context, principalID string, at time.Time) error {
	query :=
		`UPDATE profiles SET last_login = $2
		 WHERE id = $1
		 `

	if _, err := s.db.ExecContext(ctx, query, principalID, at); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ownershipTables whitelists the resource types the evaluator may ask about.
var ownershipTables = map[string]string{
	"post":  "posts",
	"alert": "alerts",
}

func (s *PostgresStore) ResourceOwner(ctx context.Context, resourceType, resourceID string) (string, error) {
	table, ok := ownershipTables[resourceType]
	if !ok {
		return "", fmt.Errorf("unknown resource type %q", resourceType)
	}

	query := fmt.Sprintf(
		`SELECT user_id FROM %s
		 WHERE id = $1
		 `, table)

	var owner string
	err := s.db.QueryRowContext(ctx, query, resourceID).Scan(&owner)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return owner, nil
}
