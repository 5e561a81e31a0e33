package assets

import "time"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedAssets returns the demo asset inventory. Assignments reference employee
// ids from the demo user list; consistency is not enforced.
func SeedAssets() []Asset {
	created := date(2023, time.January, 15)
	return []Asset{
		{
			ID: "1", AssetID: "AST-001", Name: "MacBook Pro 16\"",
			Category: CategoryComputer, Brand: "Apple", Model: "MacBook Pro 16-inch 2023",
			SerialNumber: "C02XL0GTJGH5",
			PurchaseDate: date(2023, time.March, 10), EndOfLifeDate: date(2027, time.March, 10),
			WarrantyExpiry: date(2026, time.March, 10),
			Status:         StatusActive, Location: "HQ Floor 2", AssignedTo: "EMP001",
			PurchasePrice: 3499, CurrentValue: 2450,
			Notes:     "Primary development machine",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "2", AssetID: "AST-002", Name: "Dell Latitude 7440",
			Category: CategoryComputer, Brand: "Dell", Model: "Latitude 7440",
			SerialNumber: "5CG3124XYZ",
			PurchaseDate: date(2023, time.June, 1), EndOfLifeDate: date(2027, time.June, 1),
			WarrantyExpiry: date(2026, time.June, 1),
			Status:         StatusActive, Location: "HQ Floor 3", AssignedTo: "EMP002",
			PurchasePrice: 1899, CurrentValue: 1400,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "3", AssetID: "AST-003", Name: "iPhone 15 Pro",
			Category: CategoryMobile, Brand: "Apple", Model: "iPhone 15 Pro",
			SerialNumber: "F2LW48XHJCL7",
			PurchaseDate: date(2023, time.October, 2), EndOfLifeDate: date(2026, time.October, 2),
			WarrantyExpiry: date(2025, time.October, 2),
			Status:         StatusActive, Location: "HQ Floor 2", AssignedTo: "EMP001",
			PurchasePrice: 1199, CurrentValue: 850,
			Notes:     "On-call phone",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "4", AssetID: "AST-004", Name: "PowerEdge R760",
			Category: CategoryServer, Brand: "Dell", Model: "PowerEdge R760",
			SerialNumber: "SVR-88213",
			PurchaseDate: date(2022, time.November, 20), EndOfLifeDate: date(2028, time.November, 20),
			WarrantyExpiry: date(2027, time.November, 20),
			Status:         StatusActive, Location: "Server Room A",
			PurchasePrice: 14500, CurrentValue: 9800,
			Notes:     "Build farm host",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "5", AssetID: "AST-005", Name: "Catalyst 9300 Switch",
			Category: CategoryNetwork, Brand: "Cisco", Model: "C9300-48P",
			SerialNumber: "FCW2715L0AB",
			PurchaseDate: date(2022, time.August, 5), EndOfLifeDate: date(2029, time.August, 5),
			WarrantyExpiry: date(2025, time.August, 5),
			Status:         StatusMaintenance, Location: "Server Room A",
			PurchasePrice: 6200, CurrentValue: 3700,
			Notes:     "Firmware update scheduled",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "6", AssetID: "AST-006", Name: "JetBrains All Products Pack",
			Category: CategorySoftware, Brand: "JetBrains", Model: "Annual subscription",
			SerialNumber: "JB-2023-4471",
			PurchaseDate: date(2023, time.January, 1), EndOfLifeDate: date(2024, time.January, 1),
			WarrantyExpiry: date(2024, time.January, 1),
			Status:         StatusActive, Location: "Site license", AssignedTo: "EMP005",
			PurchasePrice: 779, CurrentValue: 390,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "7", AssetID: "AST-007", Name: "ThinkPad X1 Carbon",
			Category: CategoryComputer, Brand: "Lenovo", Model: "X1 Carbon Gen 11",
			SerialNumber: "PF3KXYZA",
			PurchaseDate: date(2021, time.February, 14), EndOfLifeDate: date(2025, time.February, 14),
			WarrantyExpiry: date(2024, time.February, 14),
			Status:         StatusRetired, Location: "Storage", AssignedTo: "EMP009",
			PurchasePrice: 2100, CurrentValue: 300,
			Notes:     "Assignee left the company; pending wipe",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "8", AssetID: "AST-008", Name: "iPad Air",
			Category: CategoryMobile, Brand: "Apple", Model: "iPad Air 5th gen",
			SerialNumber: "DMPWQ2A3Q1GC",
			PurchaseDate: date(2023, time.April, 18), EndOfLifeDate: date(2027, time.April, 18),
			WarrantyExpiry: date(2025, time.April, 18),
			Status:         StatusInactive, Location: "HQ Floor 1", AssignedTo: "EMP006",
			PurchasePrice: 599, CurrentValue: 420,
			CreatedAt: created, UpdatedAt: created,
		},
	}
}
