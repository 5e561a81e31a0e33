// Package authz holds the table-driven authorization filter: view
// reachability by role and role-based asset visibility. Both decisions are
// pure functions invoked synchronously during dispatch; denial is expressed
// as a boolean, never an error.
package authz

import (
	"github.com/assetdesk/assetdesk/internal/assets"
	"github.com/assetdesk/assetdesk/internal/auth"
)

// View identifiers form the routing vocabulary between the router and its
// rendering collaborators.
const (
	ViewDashboard = "dashboard"
	ViewAssets    = "assets"
	ViewAddAsset  = "add"
	ViewEditAsset = "edit-asset"
	ViewUsers     = "users"
	ViewAddUser   = "add-user"
	ViewEditUser  = "edit-user"
	ViewReports   = "reports"
	ViewProfile   = "profile"
)

// AllViews lists every view the router can activate.
func AllViews() []string {
	return []string{
		ViewDashboard,
		ViewAssets,
		ViewAddAsset,
		ViewEditAsset,
		ViewUsers,
		ViewAddUser,
		ViewEditUser,
		ViewReports,
		ViewProfile,
	}
}

var manageRoles = map[auth.Role]bool{
	auth.RoleAdmin:   true,
	auth.RoleManager: true,
}

// viewRoles maps restricted views to the roles allowed to reach them. Views
// absent from the table are reachable by every role.
var viewRoles = map[string]map[auth.Role]bool{
	ViewAddAsset:  manageRoles,
	ViewEditAsset: manageRoles,
	ViewUsers:     manageRoles,
	ViewAddUser:   manageRoles,
	ViewEditUser:  manageRoles,
	ViewReports:   manageRoles,
}

// CanAccess reports whether the role may activate the view.
func CanAccess(role auth.Role, view string) bool {
	allowed, restricted := viewRoles[view]
	if !restricted {
		return true
	}
	return allowed[role]
}

// CanManage reports whether the role may mutate assets and users. Viewer
// read-only access is enforced here by the callers withholding mutations, not
// by the visibility filter.
func CanManage(role auth.Role) bool {
	return manageRoles[role]
}

// VisibleAssets returns the subset of the collection the identity may see.
// Admins, managers and viewers see the full input unchanged; the user role
// sees only assets assigned to its employee id, in the original order.
func VisibleAssets(identity auth.Identity, collection []assets.Asset) []assets.Asset {
	if identity.Role != auth.RoleUser {
		return collection
	}
	visible := make([]assets.Asset, 0, len(collection))
	for _, asset := range collection {
		if asset.AssignedTo == identity.EmployeeID {
			visible = append(visible, asset)
		}
	}
	return visible
}
