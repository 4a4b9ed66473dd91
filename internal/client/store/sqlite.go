package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/trattoria/internal/client/migrations"
	"github.com/dmitrijs2005/trattoria/internal/client/models"
	"github.com/dmitrijs2005/trattoria/internal/client/repositories/favorites"
	"github.com/dmitrijs2005/trattoria/internal/client/repositories/onboarding"
	"github.com/dmitrijs2005/trattoria/internal/client/repositories/orders"
	"github.com/dmitrijs2005/trattoria/internal/client/repositories/profiles"
	"github.com/dmitrijs2005/trattoria/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/trattoria/internal/common"
	"github.com/dmitrijs2005/trattoria/internal/dbx"
	"github.com/dmitrijs2005/trattoria/internal/logging"
)

// sessionTTL bounds the session-token rows recorded on activation. Tokens
// are bookkeeping only; nothing is authenticated against them on-device.
const sessionTTL = 30 * 24 * time.Hour

// SQLite implements Store over an embedded database. The schema is managed
// by goose migrations embedded in the binary; OpenSQLite returns only after
// the schema is current, so there is no separate "wait for ready" phase.
type SQLite struct {
	db  *sql.DB
	log logging.Logger

	profileRepo    profiles.Repository
	sessionRepo    sessions.Repository
	onboardingRepo onboarding.Repository
	favoriteRepo   favorites.Repository
	orderRepo      orders.Repository
}

// OpenSQLite opens (or creates) the database at dsn and migrates it.
// The caller is responsible for importing an sqlite driver, e.g.
// modernc.org/sqlite, at the composition root.
func OpenSQLite(ctx context.Context, dsn string, log logging.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &SQLite{
		db:  db,
		log: log.With("module", "store_sqlite"),

		profileRepo:    profiles.NewSQLiteRepository(db),
		sessionRepo:    sessions.NewSQLiteRepository(db),
		onboardingRepo: onboarding.NewSQLiteRepository(db),
		favoriteRepo:   favorites.NewSQLiteRepository(db),
		orderRepo:      orders.NewSQLiteRepository(db),
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) SaveProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	if p == nil || p.Email == "" {
		return nil, common.ErrorEmailRequired
	}

	now := time.Now().UTC()
	stored := *p
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if prev := s.ProfileByEmail(ctx, p.Email); prev != nil {
		stored.CreatedAt = prev.CreatedAt
	}

	if err := s.profileRepo.Save(ctx, &stored); err != nil {
		return nil, err
	}

	// Saving activates the saved email; see the Store contract.
	if err := s.SetActiveUser(ctx, p.Email); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *SQLite) Profile(ctx context.Context) *models.Profile {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	return s.ProfileByEmail(ctx, email)
}

func (s *SQLite) ProfileByEmail(ctx context.Context, email string) *models.Profile {
	if email == "" {
		return nil
	}
	p, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "failed to read profile", "email", email, "error", err.Error())
		}
		return nil
	}
	return p
}

func (s *SQLite) SetActiveUser(ctx context.Context, email string) error {
	if err := s.sessionRepo.SetActive(ctx, email); err != nil {
		return err
	}
	// Record a session row the way the original app did. Failure here is
	// diagnostic only; the active pointer is already in place.
	expiresAt := time.Now().UTC().Add(sessionTTL)
	if err := s.sessionRepo.Create(ctx, uuid.NewString(), email, expiresAt); err != nil {
		s.log.Warn(ctx, "failed to record session token", "error", err.Error())
	}
	return nil
}

func (s *SQLite) ActiveUser(ctx context.Context) string {
	email, err := s.sessionRepo.Active(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read active user", "error", err.Error())
		return ""
	}
	return email
}

func (s *SQLite) ClearActiveUser(ctx context.Context) error {
	return s.sessionRepo.ClearActive(ctx)
}

func (s *SQLite) SetOnboardingCompleted(ctx context.Context) error {
	email := s.ActiveUser(ctx)
	if email == "" || s.ProfileByEmail(ctx, email) == nil {
		s.log.Warn(ctx, "onboarding completion skipped: no active profile")
		return nil
	}
	return s.onboardingRepo.SetCompleted(ctx, email, onboarding.DefaultStep)
}

func (s *SQLite) IsOnboardingCompleted(ctx context.Context) bool {
	email := s.ActiveUser(ctx)
	if email == "" {
		return false
	}
	done, err := s.onboardingRepo.IsCompleted(ctx, email, onboarding.DefaultStep)
	if err != nil {
		s.log.Error(ctx, "failed to read onboarding flag", "error", err.Error())
		return false
	}
	return done
}

func (s *SQLite) ClearOnboardingStatus(ctx context.Context) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	return s.onboardingRepo.ClearFor(ctx, email)
}

func (s *SQLite) AddToFavorites(ctx context.Context, dishID string) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	return s.favoriteRepo.Add(ctx, email, dishID)
}

func (s *SQLite) RemoveFromFavorites(ctx context.Context, dishID string) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	return s.favoriteRepo.Remove(ctx, email, dishID)
}

func (s *SQLite) IsFavorite(ctx context.Context, dishID string) bool {
	email := s.ActiveUser(ctx)
	if email == "" {
		return false
	}
	ok, err := s.favoriteRepo.Contains(ctx, email, dishID)
	if err != nil {
		s.log.Error(ctx, "failed to check favorite", "error", err.Error())
		return false
	}
	return ok
}

func (s *SQLite) Favorites(ctx context.Context) []string {
	email := s.ActiveUser(ctx)
	if email == "" {
		return []string{}
	}
	favs, err := s.favoriteRepo.List(ctx, email)
	if err != nil {
		s.log.Error(ctx, "failed to list favorites", "error", err.Error())
		return []string{}
	}
	return favs
}

func (s *SQLite) SaveOrder(ctx context.Context, items []models.OrderItem, total float64) (*models.Order, error) {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil, common.ErrorNoActiveUser
	}

	o := &models.Order{
		ID:     uuid.NewString(),
		Email:  email,
		Items:  items,
		Total:  total,
		Status: models.OrderStatusPending,

		PlacedAt: time.Now().UTC(),
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *SQLite) Orders(ctx context.Context) []models.Order {
	email := s.ActiveUser(ctx)
	if email == "" {
		return []models.Order{}
	}
	list, err := s.orderRepo.ListFor(ctx, email)
	if err != nil {
		s.log.Error(ctx, "failed to list orders", "error", err.Error())
		return []models.Order{}
	}
	return list
}

func (s *SQLite) ClearUserData(ctx context.Context) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		sr := sessions.NewSQLiteRepository(tx)
		if err := onboarding.NewSQLiteRepository(tx).ClearFor(ctx, email); err != nil {
			return err
		}
		if err := sr.DeleteFor(ctx, email); err != nil {
			return err
		}
		return sr.ClearActive(ctx)
	})
}

func (s *SQLite) RemoveAllUserData(ctx context.Context) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := favorites.NewSQLiteRepository(tx).DeleteFor(ctx, email); err != nil {
			return err
		}
		if err := orders.NewSQLiteRepository(tx).DeleteFor(ctx, email); err != nil {
			return err
		}
		if err := onboarding.NewSQLiteRepository(tx).ClearFor(ctx, email); err != nil {
			return err
		}
		sr := sessions.NewSQLiteRepository(tx)
		if err := sr.DeleteFor(ctx, email); err != nil {
			return err
		}
		if err := sr.ClearActive(ctx); err != nil {
			return err
		}
		return profiles.NewSQLiteRepository(tx).Delete(ctx, email)
	})
}

func (s *SQLite) Reset(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := favorites.NewSQLiteRepository(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := orders.NewSQLiteRepository(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := onboarding.NewSQLiteRepository(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := sessions.NewSQLiteRepository(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return profiles.NewSQLiteRepository(tx).DeleteAll(ctx)
	})
}
