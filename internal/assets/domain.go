package assets

import "time"

// Category classifies a tracked asset.
type Category string

const (
	CategoryComputer Category = "computer"
	CategoryServer   Category = "server"
	CategoryMobile   Category = "mobile"
	CategoryNetwork  Category = "network"
	CategorySoftware Category = "software"
	CategoryOther    Category = "other"
)

// Status describes the lifecycle state of an asset.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

// Asset is a tracked IT inventory item.
//
// AssignedTo carries an employee id that should reference an existing user but
// is never enforced; dangling references are tolerated.
type Asset struct {
	ID             string    `json:"id"`
	AssetID        string    `json:"assetId"`
	Name           string    `json:"name"`
	Category       Category  `json:"category"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	SerialNumber   string    `json:"serialNumber"`
	PurchaseDate   time.Time `json:"purchaseDate"`
	EndOfLifeDate  time.Time `json:"endOfLifeDate"`
	WarrantyExpiry time.Time `json:"warrantyExpiry"`
	Status         Status    `json:"status"`
	Location       string    `json:"location"`
	AssignedTo     string    `json:"assignedTo"`
	PurchasePrice  float64   `json:"purchasePrice"`
	CurrentValue   float64   `json:"currentValue"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Form carries the submittable fields of an asset. Validation covers form
// requiredness only; uniqueness of asset tag or serial is deliberately not
// checked.
type Form struct {
	AssetID        string   `validate:"required"`
	Name           string   `validate:"required"`
	Category       Category `validate:"required"`
	Brand          string
	Model          string
	SerialNumber   string
	PurchaseDate   time.Time
	EndOfLifeDate  time.Time
	WarrantyExpiry time.Time
	Status         Status `validate:"required"`
	Location       string
	AssignedTo     string
	PurchasePrice  float64
	CurrentValue   float64
	Notes          string
}

func (f Form) apply(asset Asset) Asset {
	asset.AssetID = f.AssetID
	asset.Name = f.Name
	asset.Category = f.Category
	asset.Brand = f.Brand
	asset.Model = f.Model
	asset.SerialNumber = f.SerialNumber
	asset.PurchaseDate = f.PurchaseDate
	asset.EndOfLifeDate = f.EndOfLifeDate
	asset.WarrantyExpiry = f.WarrantyExpiry
	asset.Status = f.Status
	asset.Location = f.Location
	asset.AssignedTo = f.AssignedTo
	asset.PurchasePrice = f.PurchasePrice
	asset.CurrentValue = f.CurrentValue
	asset.Notes = f.Notes
	return asset
}
