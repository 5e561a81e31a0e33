package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/assetdesk/assetdesk/internal/assets"
	"github.com/assetdesk/assetdesk/internal/users"
)

// expiringWindow is the horizon for the "expiring soon" counter.
const expiringWindow = 90 * 24 * time.Hour

// Service generates report snapshots over the in-memory collections.
type Service struct {
	group   singleflight.Group
	printer *message.Printer
	now     func() time.Time
}

// NewService constructs a report Service.
func NewService() *Service {
	return &Service{
		printer: message.NewPrinter(language.English),
		now:     time.Now,
	}
}

// Generate builds a report of the given type over the supplied collections.
// Identical concurrent requests for the same type and filter are collapsed
// into a single build.
func (s *Service) Generate(ctx context.Context, typ Type, filter Filter, assetList []assets.Asset, userList []users.User) (Report, error) {
	cfg, ok := configs[typ]
	if !ok {
		return Report{}, fmt.Errorf("reports: unknown report type %q", typ)
	}

	key := fmt.Sprintf("%s|%s|%s|%s|%s|%d|%d", typ, filter.Category, filter.Status, filter.AssignedTo, filter.Location, filter.From.Unix(), filter.To.Unix())
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return s.build(typ, cfg.Title, cfg.Description, filter, assetList, userList), nil
	})
	select {
	case <-ctx.Done():
		return Report{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Report{}, res.Err
		}
		return res.Val.(Report), nil
	}
}

// FormatValue renders a monetary amount for display, grouped per the English
// locale.
func (s *Service) FormatValue(v float64) string {
	return s.printer.Sprintf("$%.2f", v)
}

func (s *Service) build(typ Type, title, description string, filter Filter, assetList []assets.Asset, userList []users.User) Report {
	now := s.now().UTC()
	matched := filterAssets(assetList, filter)

	report := Report{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Description: description,
		GeneratedAt: now,
		Filter:      filter,
		Assets:      matched,
		Summary:     summarize(matched, now),
	}
	if typ == TypeUserSummary {
		report.Users = userList
		report.Summary.TotalItems = len(userList)
	}
	return report
}

func filterAssets(collection []assets.Asset, filter Filter) []assets.Asset {
	matched := make([]assets.Asset, 0, len(collection))
	for _, asset := range collection {
		if filter.Category != "" && asset.Category != filter.Category {
			continue
		}
		if filter.Status != "" && asset.Status != filter.Status {
			continue
		}
		if filter.AssignedTo != "" && asset.AssignedTo != filter.AssignedTo {
			continue
		}
		if filter.Location != "" && asset.Location != filter.Location {
			continue
		}
		if !filter.From.IsZero() && asset.PurchaseDate.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && asset.PurchaseDate.After(filter.To) {
			continue
		}
		matched = append(matched, asset)
	}
	return matched
}

func summarize(matched []assets.Asset, now time.Time) Summary {
	summary := Summary{
		TotalItems: len(matched),
		Categories: make(map[string]int),
		Statuses:   make(map[string]int),
	}
	var ageTotal float64
	for _, asset := range matched {
		summary.Categories[string(asset.Category)]++
		summary.Statuses[string(asset.Status)]++
		summary.TotalValue += asset.CurrentValue
		if !asset.PurchaseDate.IsZero() {
			ageTotal += now.Sub(asset.PurchaseDate).Hours() / 24 / 365.25
		}
		if expiresWithin(asset, now, expiringWindow) {
			summary.ExpiringSoon++
		}
	}
	if len(matched) > 0 {
		summary.AvgAgeYears = ageTotal / float64(len(matched))
	}
	return summary
}

func expiresWithin(asset assets.Asset, now time.Time, window time.Duration) bool {
	horizon := now.Add(window)
	for _, deadline := range []time.Time{asset.WarrantyExpiry, asset.EndOfLifeDate} {
		if deadline.IsZero() {
			continue
		}
		if deadline.After(now) && deadline.Before(horizon) {
			return true
		}
	}
	return false
}
