// Package router holds the active view and the in-memory entity collections,
// and dispatches every mutation through the authorization filter. It models
// the single-threaded UI event loop: one writer, each action fully applied
// before the next is dispatched. Denied requests are logged and leave state
// untouched; they never raise.
package router

import (
	"context"
	"log/slog"

	"github.com/assetdesk/assetdesk/internal/assets"
	"github.com/assetdesk/assetdesk/internal/auth"
	"github.com/assetdesk/assetdesk/internal/authz"
	"github.com/assetdesk/assetdesk/internal/users"
)

// Authenticator is the slice of the auth service the router drives.
type Authenticator interface {
	Login(ctx context.Context, creds auth.Credentials) (auth.Identity, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, id string, update auth.ProfileUpdate) (auth.Identity, error)
}

// SessionStore is the persistence surface the router drives after login and
// profile updates. Logout-side clearing happens inside the authenticator.
type SessionStore interface {
	Save(ctx context.Context, identity auth.Identity) error
	Load(ctx context.Context) (*auth.Identity, error)
	Clear(ctx context.Context) error
}

// Router is the view router and state holder.
type Router struct {
	logger   *slog.Logger
	authn    Authenticator
	sessions SessionStore
	assets   *assets.Service
	users    *users.Service

	identity     *auth.Identity
	activeView   string
	editingAsset *assets.Asset
	editingUser  *users.User
	loading      bool
	loginError   string
}

// New constructs a Router over the given services and collections.
func New(logger *slog.Logger, authn Authenticator, sessions SessionStore, assetSvc *assets.Service, userSvc *users.Service) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		logger:     logger,
		authn:      authn,
		sessions:   sessions,
		assets:     assetSvc,
		users:      userSvc,
		activeView: authz.ViewDashboard,
	}
}

// Restore loads a previously persisted identity at startup. Absence and
// storage failures both leave the router unauthenticated.
func (r *Router) Restore(ctx context.Context) {
	identity, err := r.sessions.Load(ctx)
	if err != nil {
		r.logger.Warn("restore session", slog.Any("error", err))
		return
	}
	r.identity = identity
}

// Login authenticates the credentials and persists the refreshed identity
// into the session store. Authentication failures surface as an error and as
// a user-visible message via LoginError.
func (r *Router) Login(ctx context.Context, creds auth.Credentials) error {
	if r.loading {
		r.logger.Debug("login ignored while request in flight")
		return nil
	}
	r.loading = true
	defer func() { r.loading = false }()

	identity, err := r.authn.Login(ctx, creds)
	if err != nil {
		r.loginError = "Invalid email or password"
		return err
	}
	if err := r.sessions.Save(ctx, identity); err != nil {
		r.logger.Warn("persist session after login", slog.Any("error", err))
	}
	r.identity = &identity
	r.loginError = ""
	r.activeView = authz.ViewDashboard
	return nil
}

// Logout ends the session and resets all view state. It never fails.
func (r *Router) Logout(ctx context.Context) {
	if r.loading {
		r.logger.Debug("logout ignored while request in flight")
		return
	}
	r.loading = true
	defer func() { r.loading = false }()

	if err := r.authn.Logout(ctx); err != nil {
		r.logger.Warn("logout", slog.Any("error", err))
	}
	r.identity = nil
	r.activeView = authz.ViewDashboard
	r.editingAsset = nil
	r.editingUser = nil
	r.loginError = ""
}

// UpdateProfile merges the update over the authenticated identity and
// persists the result into the session store.
func (r *Router) UpdateProfile(ctx context.Context, update auth.ProfileUpdate) error {
	if r.identity == nil {
		r.logger.Warn("profile update without authenticated identity")
		return nil
	}
	identity, err := r.authn.UpdateProfile(ctx, r.identity.ID, update)
	if err != nil {
		return err
	}
	if err := r.sessions.Save(ctx, identity); err != nil {
		r.logger.Warn("persist session after profile update", slog.Any("error", err))
	}
	r.identity = &identity
	return nil
}

// SetView activates the requested view when the authenticated role may reach
// it. Denied requests leave the active view unchanged. Leaving an edit view
// drops the record under edit.
func (r *Router) SetView(view string) {
	if !r.allowed(view) {
		return
	}
	r.activeView = view
	if view != authz.ViewEditAsset && view != authz.ViewEditUser {
		r.editingAsset = nil
		r.editingUser = nil
	}
}

// StartEditAsset selects the asset for editing and activates the edit view.
func (r *Router) StartEditAsset(id string) {
	if !r.allowed(authz.ViewEditAsset) {
		return
	}
	asset, ok := r.assets.Get(id)
	if !ok {
		r.logger.Warn("edit requested for unknown asset", slog.String("id", id))
		return
	}
	r.editingAsset = &asset
	r.activeView = authz.ViewEditAsset
}

// StartEditUser selects the user for editing and activates the edit view.
func (r *Router) StartEditUser(id string) {
	if !r.allowed(authz.ViewEditUser) {
		return
	}
	user, ok := r.users.Get(id)
	if !ok {
		r.logger.Warn("edit requested for unknown user", slog.String("id", id))
		return
	}
	r.editingUser = &user
	r.activeView = authz.ViewEditUser
}

// Cancel abandons the form in progress and returns to the relevant list view.
func (r *Router) Cancel() {
	wasEditingAsset := r.editingAsset != nil
	r.editingAsset = nil
	r.editingUser = nil
	if wasEditingAsset || r.activeView == authz.ViewAddAsset || r.activeView == authz.ViewEditAsset {
		r.activeView = authz.ViewAssets
		return
	}
	r.activeView = authz.ViewUsers
}

// AddAsset appends a new asset and returns to the asset list. Denied
// dispatches return a zero asset without error.
func (r *Router) AddAsset(form assets.Form) (assets.Asset, error) {
	if !r.canManage("add asset") {
		return assets.Asset{}, nil
	}
	asset, err := r.assets.Add(form)
	if err != nil {
		return assets.Asset{}, err
	}
	r.activeView = authz.ViewAssets
	return asset, nil
}

// EditAsset applies the form to the asset selected via StartEditAsset.
func (r *Router) EditAsset(form assets.Form) (assets.Asset, error) {
	if !r.canManage("edit asset") {
		return assets.Asset{}, nil
	}
	if r.editingAsset == nil {
		r.logger.Warn("edit asset without selection")
		return assets.Asset{}, nil
	}
	asset, err := r.assets.Edit(r.editingAsset.ID, form)
	if err != nil {
		return assets.Asset{}, err
	}
	r.editingAsset = nil
	r.activeView = authz.ViewAssets
	return asset, nil
}

// DeleteAsset removes the asset after explicit caller confirmation. Deleting
// an unknown id is a no-op.
func (r *Router) DeleteAsset(id string, confirmed bool) {
	if !confirmed {
		r.logger.Debug("asset delete not confirmed", slog.String("id", id))
		return
	}
	if !r.canManage("delete asset") {
		return
	}
	if !r.assets.Delete(id) {
		r.logger.Debug("delete requested for unknown asset", slog.String("id", id))
	}
}

// AddUser appends a new user and returns to the user list.
func (r *Router) AddUser(form users.Form) (users.User, error) {
	if !r.canManage("add user") {
		return users.User{}, nil
	}
	user, err := r.users.Add(form)
	if err != nil {
		return users.User{}, err
	}
	r.activeView = authz.ViewUsers
	return user, nil
}

// EditUser applies the form to the user selected via StartEditUser.
func (r *Router) EditUser(form users.Form) (users.User, error) {
	if !r.canManage("edit user") {
		return users.User{}, nil
	}
	if r.editingUser == nil {
		r.logger.Warn("edit user without selection")
		return users.User{}, nil
	}
	user, err := r.users.Edit(r.editingUser.ID, form)
	if err != nil {
		return users.User{}, err
	}
	r.editingUser = nil
	r.activeView = authz.ViewUsers
	return user, nil
}

// DeleteUser removes the user after explicit caller confirmation.
func (r *Router) DeleteUser(id string, confirmed bool) {
	if !confirmed {
		r.logger.Debug("user delete not confirmed", slog.String("id", id))
		return
	}
	if !r.canManage("delete user") {
		return
	}
	if !r.users.Delete(id) {
		r.logger.Debug("delete requested for unknown user", slog.String("id", id))
	}
}

// Identity returns the authenticated identity, if any.
func (r *Router) Identity() (auth.Identity, bool) {
	if r.identity == nil {
		return auth.Identity{}, false
	}
	return *r.identity, true
}

// ActiveView returns the currently active view identifier.
func (r *Router) ActiveView() string {
	return r.activeView
}

// VisibleAssets returns the asset collection filtered for the authenticated
// role. Unauthenticated callers see nothing.
func (r *Router) VisibleAssets() []assets.Asset {
	if r.identity == nil {
		return nil
	}
	return authz.VisibleAssets(*r.identity, r.assets.List())
}

// Users returns the managed user collection, e.g. for assignee selection.
func (r *Router) Users() []users.User {
	return r.users.List()
}

// EditingAsset returns the asset under edit, if one is selected.
func (r *Router) EditingAsset() (assets.Asset, bool) {
	if r.editingAsset == nil {
		return assets.Asset{}, false
	}
	return *r.editingAsset, true
}

// EditingUser returns the user under edit, if one is selected.
func (r *Router) EditingUser() (users.User, bool) {
	if r.editingUser == nil {
		return users.User{}, false
	}
	return *r.editingUser, true
}

// CanEdit reports whether the rendering collaborators should expose mutation
// callbacks; viewers and plain users get read-only surfaces.
func (r *Router) CanEdit() bool {
	return r.identity != nil && authz.CanManage(r.identity.Role)
}

// Loading reports whether an authentication call is in flight.
func (r *Router) Loading() bool {
	return r.loading
}

// LoginError returns the user-visible message from the last failed login.
func (r *Router) LoginError() string {
	return r.loginError
}

func (r *Router) allowed(view string) bool {
	if r.identity == nil {
		r.logger.Warn("view requested without authenticated identity", slog.String("view", view))
		return false
	}
	if !authz.CanAccess(r.identity.Role, view) {
		r.logger.Warn("view access denied",
			slog.String("view", view),
			slog.String("role", string(r.identity.Role)),
		)
		return false
	}
	return true
}

func (r *Router) canManage(action string) bool {
	if r.identity == nil {
		r.logger.Warn("action without authenticated identity", slog.String("action", action))
		return false
	}
	if !authz.CanManage(r.identity.Role) {
		r.logger.Warn("action denied",
			slog.String("action", action),
			slog.String("role", string(r.identity.Role)),
		)
		return false
	}
	return true
}
