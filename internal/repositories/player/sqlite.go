package player

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/pkg/clock"
)

//go:embed schema.sql
var schema string

// SQLiteConfig contains configuration for the SQLite player repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return errors.NewValidationBuilder().
		RequiredFieldIf("Path", strings.TrimSpace(cfg.Path) == "").
		RequiredFieldIf("Clock", cfg.Clock == nil).
		Build()
}

// SQLiteRepository stores one row per player in a local SQLite file
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite opens the database and applies the schema
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Persistence(err, "failed to open sqlite db %s", cfg.Path)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Persistence(err, "failed to ping sqlite db %s", cfg.Path)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Persistence(err, "failed to apply sqlite schema")
	}

	return &SQLiteRepository{db: db, clock: cfg.Clock}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.UnixMilli(v).UTC()
}

// Get loads one player row
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var (
		record                rpg.Record
		levelPing             int
		path, classes, stats  string
		cdExp, cdDaily, cdRep int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, level, experience, prestige, level_ping, path, classes, stats,
		        cooldown_experience, cooldown_daily, cooldown_reputation,
		        daily_streak, balance, reputation
		   FROM players WHERE id = ?`,
		input.ID,
	).Scan(
		&record.ID, &record.Level, &record.Experience, &record.Prestige, &levelPing,
		&path, &classes, &stats,
		&cdExp, &cdDaily, &cdRep,
		&record.DailyStreak, &record.Balance, &record.Reputation,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("player %s not found", input.ID)
		}
		return nil, errors.Persistence(err, "failed to get player %s", input.ID)
	}

	record.LevelPing = levelPing != 0
	record.Path = rpg.Path(path)
	if err := json.Unmarshal([]byte(classes), &record.Classes); err != nil {
		return nil, errors.Wrapf(err, "failed to decode classes for player %s", input.ID)
	}
	if err := json.Unmarshal([]byte(stats), &record.Stats); err != nil {
		return nil, errors.Wrapf(err, "failed to decode stats for player %s", input.ID)
	}
	record.Cooldowns = rpg.Cooldowns{
		Experience: fromMillis(cdExp),
		Daily:      fromMillis(cdDaily),
		Reputation: fromMillis(cdRep),
	}

	return &GetOutput{Record: &record}, nil
}

// Save upserts one player row
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordEmpty)
	}
	rec := input.Record
	if rec.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	classes := rec.Classes
	if classes == nil {
		classes = []rpg.Class{}
	}
	classesJSON, err := json.Marshal(classes)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode classes for player %s", rec.ID)
	}
	statsJSON, err := json.Marshal(rec.Stats)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode stats for player %s", rec.ID)
	}

	levelPing := 0
	if rec.LevelPing {
		levelPing = 1
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO players (
		   id, level, experience, prestige, level_ping, path, classes, stats,
		   cooldown_experience, cooldown_daily, cooldown_reputation,
		   daily_streak, balance, reputation, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   level = excluded.level,
		   experience = excluded.experience,
		   prestige = excluded.prestige,
		   level_ping = excluded.level_ping,
		   path = excluded.path,
		   classes = excluded.classes,
		   stats = excluded.stats,
		   cooldown_experience = excluded.cooldown_experience,
		   cooldown_daily = excluded.cooldown_daily,
		   cooldown_reputation = excluded.cooldown_reputation,
		   daily_streak = excluded.daily_streak,
		   balance = excluded.balance,
		   reputation = excluded.reputation,
		   updated_at = excluded.updated_at`,
		rec.ID, rec.Level, rec.Experience, rec.Prestige, levelPing, string(rec.Path),
		string(classesJSON), string(statsJSON),
		toMillis(rec.Cooldowns.Experience), toMillis(rec.Cooldowns.Daily), toMillis(rec.Cooldowns.Reputation),
		rec.DailyStreak, rec.Balance, rec.Reputation, toMillis(r.clock.Now()),
	)
	if err != nil {
		return nil, errors.Persistence(err, "failed to save player %s", rec.ID)
	}

	return &SaveOutput{}, nil
}

// Delete removes one player row
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Persistence(err, "failed to delete player %s", input.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Persistence(err, "failed to delete player %s", input.ID)
	}

	return &DeleteOutput{Existed: n > 0}, nil
}
