package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/trattoria/internal/client/models"
	"github.com/dmitrijs2005/trattoria/internal/client/substrate"
	"github.com/dmitrijs2005/trattoria/internal/common"
	"github.com/dmitrijs2005/trattoria/internal/logging"
)

// Substrate keys. The substrate is scoped to the app, so the names carry no
// app prefix; per-user documents append the owning email.
const (
	keyProfiles       = "profiles"
	keyActiveEmail    = "active_email"
	keyOnboardingPref = "onboarding:"
	keyFavoritesPref  = "favorites:"
	keyOrdersPref     = "orders:"
)

// KV implements Store as JSON documents on a key-value substrate: one
// document mapping email to profile, a scalar active-email value, and
// per-user documents for the onboarding flag, favorites and orders.
type KV struct {
	sub substrate.Substrate
	log logging.Logger
}

// OpenKV returns a Store over the given substrate. The substrate is expected
// to be ready; file-backed substrates load in their own constructor.
func OpenKV(sub substrate.Substrate, log logging.Logger) *KV {
	return &KV{sub: sub, log: log.With("module", "store_kv")}
}

func (s *KV) Close() error { return nil }

// profilesDoc reads the email-to-profile document, treating an absent or
// unreadable document as empty.
func (s *KV) profilesDoc(ctx context.Context) map[string]models.Profile {
	raw, err := s.sub.Get(ctx, keyProfiles)
	if err != nil {
		s.log.Error(ctx, "failed to read profiles", "error", err.Error())
		return map[string]models.Profile{}
	}
	if raw == nil {
		return map[string]models.Profile{}
	}
	var doc map[string]models.Profile
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Error(ctx, "failed to decode profiles", "error", err.Error())
		return map[string]models.Profile{}
	}
	return doc
}

func (s *KV) writeProfilesDoc(ctx context.Context, doc map[string]models.Profile) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := s.sub.Set(ctx, keyProfiles, raw); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	return nil
}

func (s *KV) SaveProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	if p == nil || p.Email == "" {
		return nil, common.ErrorEmailRequired
	}

	doc := s.profilesDoc(ctx)
	now := time.Now().UTC()

	stored := *p
	stored.UpdatedAt = now
	if prev, ok := doc[p.Email]; ok {
		stored.CreatedAt = prev.CreatedAt
	} else {
		stored.CreatedAt = now
	}

	doc[p.Email] = stored
	if err := s.writeProfilesDoc(ctx, doc); err != nil {
		return nil, err
	}

	// Saving activates the saved email; see the Store contract.
	if err := s.SetActiveUser(ctx, p.Email); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *KV) Profile(ctx context.Context) *models.Profile {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	return s.ProfileByEmail(ctx, email)
}

func (s *KV) ProfileByEmail(ctx context.Context, email string) *models.Profile {
	if email == "" {
		return nil
	}
	doc := s.profilesDoc(ctx)
	p, ok := doc[email]
	if !ok {
		return nil
	}
	return &p
}

func (s *KV) SetActiveUser(ctx context.Context, email string) error {
	if err := s.sub.Set(ctx, keyActiveEmail, []byte(email)); err != nil {
		return fmt.Errorf("failed to set active user: %w", err)
	}
	return nil
}

func (s *KV) ActiveUser(ctx context.Context) string {
	raw, err := s.sub.Get(ctx, keyActiveEmail)
	if err != nil {
		s.log.Error(ctx, "failed to read active user", "error", err.Error())
		return ""
	}
	return string(raw)
}

func (s *KV) ClearActiveUser(ctx context.Context) error {
	if err := s.sub.Delete(ctx, keyActiveEmail); err != nil {
		return fmt.Errorf("failed to clear active user: %w", err)
	}
	return nil
}

func (s *KV) SetOnboardingCompleted(ctx context.Context) error {
	email := s.ActiveUser(ctx)
	if email == "" || s.ProfileByEmail(ctx, email) == nil {
		// Precondition not met; the screens treat this as "nothing to do".
		s.log.Warn(ctx, "onboarding completion skipped: no active profile")
		return nil
	}
	if err := s.sub.Set(ctx, keyOnboardingPref+email, []byte("true")); err != nil {
		return fmt.Errorf("failed to set onboarding flag: %w", err)
	}
	return nil
}

func (s *KV) IsOnboardingCompleted(ctx context.Context) bool {
	email := s.ActiveUser(ctx)
	if email == "" {
		return false
	}
	raw, err := s.sub.Get(ctx, keyOnboardingPref+email)
	if err != nil {
		s.log.Error(ctx, "failed to read onboarding flag", "error", err.Error())
		return false
	}
	return string(raw) == "true"
}

func (s *KV) ClearOnboardingStatus(ctx context.Context) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	if err := s.sub.Delete(ctx, keyOnboardingPref+email); err != nil {
		return fmt.Errorf("failed to clear onboarding flag: %w", err)
	}
	return nil
}

func (s *KV) favoritesFor(ctx context.Context, email string) []string {
	raw, err := s.sub.Get(ctx, keyFavoritesPref+email)
	if err != nil {
		s.log.Error(ctx, "failed to read favorites", "error", err.Error())
		return []string{}
	}
	if raw == nil {
		return []string{}
	}
	var favs []string
	if err := json.Unmarshal(raw, &favs); err != nil {
		s.log.Error(ctx, "failed to decode favorites", "error", err.Error())
		return []string{}
	}
	return favs
}

func (s *KV) writeFavorites(ctx context.Context, email string, favs []string) error {
	raw, err := json.Marshal(favs)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.sub.Set(ctx, keyFavoritesPref+email, raw); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}

func (s *KV) AddToFavorites(ctx context.Context, dishID string) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	favs := s.favoritesFor(ctx, email)
	for _, id := range favs {
		if id == dishID {
			return nil
		}
	}
	return s.writeFavorites(ctx, email, append(favs, dishID))
}

func (s *KV) RemoveFromFavorites(ctx context.Context, dishID string) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}
	favs := s.favoritesFor(ctx, email)
	kept := favs[:0]
	for _, id := range favs {
		if id != dishID {
			kept = append(kept, id)
		}
	}
	return s.writeFavorites(ctx, email, kept)
}

func (s *KV) IsFavorite(ctx context.Context, dishID string) bool {
	email := s.ActiveUser(ctx)
	if email == "" {
		return false
	}
	for _, id := range s.favoritesFor(ctx, email) {
		if id == dishID {
			return true
		}
	}
	return false
}

func (s *KV) Favorites(ctx context.Context) []string {
	email := s.ActiveUser(ctx)
	if email == "" {
		return []string{}
	}
	return s.favoritesFor(ctx, email)
}

func (s *KV) ordersFor(ctx context.Context, email string) []models.Order {
	raw, err := s.sub.Get(ctx, keyOrdersPref+email)
	if err != nil {
		s.log.Error(ctx, "failed to read orders", "error", err.Error())
		return []models.Order{}
	}
	if raw == nil {
		return []models.Order{}
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		s.log.Error(ctx, "failed to decode orders", "error", err.Error())
		return []models.Order{}
	}
	return orders
}

func (s *KV) SaveOrder(ctx context.Context, items []models.OrderItem, total float64) (*models.Order, error) {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil, common.ErrorNoActiveUser
	}

	o := models.Order{
		ID:     uuid.NewString(),
		Email:  email,
		Items:  items,
		Total:  total,
		Status: models.OrderStatusPending,

		PlacedAt: time.Now().UTC(),
	}

	// Newest first, matching Orders().
	orders := append([]models.Order{o}, s.ordersFor(ctx, email)...)
	raw, err := json.Marshal(orders)
	if err != nil {
		return nil, fmt.Errorf("failed to encode orders: %w", err)
	}
	if err := s.sub.Set(ctx, keyOrdersPref+email, raw); err != nil {
		return nil, fmt.Errorf("failed to write orders: %w", err)
	}
	return &o, nil
}

func (s *KV) Orders(ctx context.Context) []models.Order {
	email := s.ActiveUser(ctx)
	if email == "" {
		return []models.Order{}
	}
	return s.ordersFor(ctx, email)
}

func (s *KV) ClearUserData(ctx context.Context) error {
	if err := s.ClearOnboardingStatus(ctx); err != nil {
		return err
	}
	return s.ClearActiveUser(ctx)
}

func (s *KV) RemoveAllUserData(ctx context.Context) error {
	email := s.ActiveUser(ctx)
	if email == "" {
		return nil
	}

	doc := s.profilesDoc(ctx)
	delete(doc, email)
	if err := s.writeProfilesDoc(ctx, doc); err != nil {
		return err
	}

	for _, key := range []string{
		keyOnboardingPref + email,
		keyFavoritesPref + email,
		keyOrdersPref + email,
	} {
		if err := s.sub.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return s.ClearActiveUser(ctx)
}

func (s *KV) Reset(ctx context.Context) error {
	if err := s.sub.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset substrate: %w", err)
	}
	return nil
}
