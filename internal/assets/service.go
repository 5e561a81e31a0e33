package assets

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/assetdesk/assetdesk/internal/shared"
)

// Service manages the in-memory asset collection. It is mutated by a single
// writer: the view dispatch loop applies one action fully before the next.
type Service struct {
	validate *validator.Validate
	assets   []Asset
	now      func() time.Time
}

// NewService builds a Service seeded with the given assets.
func NewService(seed []Asset) *Service {
	assets := make([]Asset, len(seed))
	copy(assets, seed)
	return &Service{
		validate: validator.New(),
		assets:   assets,
		now:      time.Now,
	}
}

// List returns a copy of the collection in insertion order.
func (s *Service) List() []Asset {
	out := make([]Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// Get fetches an asset by id.
func (s *Service) Get(id string) (Asset, bool) {
	for _, asset := range s.assets {
		if asset.ID == id {
			return asset, true
		}
	}
	return Asset{}, false
}

// Add validates the form, synthesizes a new asset with a generation-time id
// and creation/update stamps, and appends it to the collection.
func (s *Service) Add(form Form) (Asset, error) {
	if err := s.validate.Struct(form); err != nil {
		return Asset{}, fmt.Errorf("assets: invalid form: %w", err)
	}
	now := s.now().UTC()
	asset := form.apply(Asset{
		ID:        s.newID(now),
		CreatedAt: now,
		UpdatedAt: now,
	})
	s.assets = append(s.assets, asset)
	return asset, nil
}

// Edit replaces the submittable fields of the asset identified by id and
// refreshes only its update timestamp.
func (s *Service) Edit(id string, form Form) (Asset, error) {
	if err := s.validate.Struct(form); err != nil {
		return Asset{}, fmt.Errorf("assets: invalid form: %w", err)
	}
	for i, asset := range s.assets {
		if asset.ID != id {
			continue
		}
		updated := form.apply(asset)
		updated.UpdatedAt = s.now().UTC()
		s.assets[i] = updated
		return updated, nil
	}
	return Asset{}, shared.ErrNotFound
}

// Delete removes the asset identified by id. Deleting an unknown id is a
// no-op; the return value reports whether anything was removed.
func (s *Service) Delete(id string) bool {
	kept := s.assets[:0]
	removed := false
	for _, asset := range s.assets {
		if asset.ID == id {
			removed = true
			continue
		}
		kept = append(kept, asset)
	}
	s.assets = kept
	return removed
}

// newID derives an id token from the generation time, disambiguated against
// ids already present so same-millisecond adds stay unique.
func (s *Service) newID(now time.Time) string {
	id := strconv.FormatInt(now.UnixMilli(), 10)
	for i := 1; s.hasID(id); i++ {
		id = strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.Itoa(i)
	}
	return id
}

func (s *Service) hasID(id string) bool {
	_, ok := s.Get(id)
	return ok
}
