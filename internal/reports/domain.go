package reports

import (
	"time"

	"github.com/assetdesk/assetdesk/internal/assets"
	"github.com/assetdesk/assetdesk/internal/users"
)

// Type identifies a report template.
type Type string

const (
	TypeAssetInventory   Type = "asset-inventory"
	TypeAssetLifecycle   Type = "asset-lifecycle"
	TypeAssetFinancial   Type = "asset-financial"
	TypeUserSummary      Type = "user-summary"
	TypeDepartmentAssets Type = "department-assets"
	TypeExpiringAssets   Type = "expiring-assets"
	TypeAssetUtilization Type = "asset-utilization"
)

// Filter narrows the records included in a report. Zero values match
// everything.
type Filter struct {
	From       time.Time
	To         time.Time
	Category   assets.Category
	Status     assets.Status
	AssignedTo string
	Location   string
}

// Summary aggregates headline numbers for a generated report.
type Summary struct {
	TotalItems   int            `json:"totalItems"`
	Categories   map[string]int `json:"categories"`
	Statuses     map[string]int `json:"statuses"`
	TotalValue   float64        `json:"totalValue"`
	AvgAgeYears  float64        `json:"avgAge"`
	ExpiringSoon int            `json:"expiringSoon"`
}

// Report is a generated snapshot handed to the rendering collaborators.
type Report struct {
	ID          string         `json:"id"`
	Type        Type           `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Filter      Filter         `json:"filters"`
	Assets      []assets.Asset `json:"assets,omitempty"`
	Users       []users.User   `json:"users,omitempty"`
	Summary     Summary        `json:"summary"`
}

// configs describes the fixed report catalogue.
var configs = map[Type]struct {
	Title       string
	Description string
}{
	TypeAssetInventory:   {"Asset Inventory", "Complete listing of tracked assets"},
	TypeAssetLifecycle:   {"Asset Lifecycle", "Age and end-of-life outlook per asset"},
	TypeAssetFinancial:   {"Asset Financials", "Purchase cost and current value overview"},
	TypeUserSummary:      {"User Summary", "Managed users by department and status"},
	TypeDepartmentAssets: {"Department Assets", "Assets grouped by assignee department"},
	TypeExpiringAssets:   {"Expiring Assets", "Warranties and lifecycles ending soon"},
	TypeAssetUtilization: {"Asset Utilization", "Assignment coverage of the inventory"},
}
