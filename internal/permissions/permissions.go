// Package permissions evaluates role-based permissions and ownership-scoped
// actions over a fixed permission table. The table is part of the module's
// external contract; denial is a normal boolean result, never an error.
package permissions

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/models"
)

// Permission names understood by the evaluator.
const (
	ViewPosts         = "VIEW_POSTS"
	EditPosts         = "EDIT_POSTS"
	DeletePosts       = "DELETE_POSTS"
	EditOwnPosts      = "EDIT_OWN_POSTS"
	ExportData        = "EXPORT_DATA"
	UseChat           = "USE_CHAT"
	RequestAIAnalysis = "REQUEST_AI_ANALYSIS"
	ViewAlerts        = "VIEW_ALERTS"
	CreateAlerts      = "CREATE_ALERTS"
	EditOwnAlerts     = "EDIT_OWN_ALERTS"
	EditAllAlerts     = "EDIT_ALL_ALERTS"
	ManageUsers       = "MANAGE_USERS"
	ManageSettings    = "MANAGE_SETTINGS"
	ManageAPIKeys     = "MANAGE_API_KEYS"
	InviteUsers       = "INVITE_USERS"
	ViewAPIUsage      = "VIEW_API_USAGE"
)

// rolePermissions maps each permission to the only roles granted it.
// Immutable after init; safe for concurrent reads.
var rolePermissions = map[string]map[models.Role]bool{
	ViewPosts:         roles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAnalyst, models.RoleViewer, models.RoleGuest),
	ExportData:        roles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAnalyst, models.RoleViewer),
	UseChat:           roles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAnalyst, models.RoleViewer),
	EditPosts:         roles(models.RoleSuperAdmin, models.RoleAdmin),
	DeletePosts:       roles(models.RoleSuperAdmin, models.RoleAdmin),
	EditOwnPosts:      roles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAnalyst),
	EditOwnAlerts:     roles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAnalyst),
	RequestAIAnalysis: roles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAnalyst),
	CreateAlerts:      roles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAnalyst),
	ViewAlerts:        roles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAnalyst, models.RoleViewer),
	EditAllAlerts:     roles(models.RoleSuperAdmin, models.RoleAdmin),
	ManageUsers:       roles(models.RoleSuperAdmin),
	ManageSettings:    roles(models.RoleSuperAdmin),
	ManageAPIKeys:     roles(models.RoleSuperAdmin),
	InviteUsers:       roles(models.RoleSuperAdmin, models.RoleAdmin),
	ViewAPIUsage:      roles(models.RoleSuperAdmin, models.RoleAdmin),
}

func roles(rs ...models.Role) map[models.Role]bool {
	m := make(map[models.Role]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

// HasPermission reports whether the user's role is granted the permission.
// A nil user and an unknown permission name both evaluate to false.
func HasPermission(u *models.User, permission string) bool {
	if u == nil {
		return false
	}
	allowed, ok := rolePermissions[permission]
	if !ok {
		return false
	}
	return allowed[u.Role]
}

// OwnershipLookup resolves which principal owns a resource.
// store.Store satisfies it.
type OwnershipLookup interface {
	ResourceOwner(ctx context.Context, resourceType, resourceID string) (string, error)
}

// Evaluator answers permission questions, performing an ownership lookup for
// ownership-scoped actions.
type Evaluator struct {
	owners OwnershipLookup
	log    logging.Logger
}

func NewEvaluator(owners OwnershipLookup, log logging.Logger) *Evaluator {
	return &Evaluator{owners: owners, log: log}
}

func (e *Evaluator) HasPermission(u *models.User, permission string) bool {
	return HasPermission(u, permission)
}

// CanPerform evaluates an action for the user. Actions whose name contains
// "OWN" are ownership-scoped: when resourceType and resourceID are supplied,
// the action is allowed only if the role check passes AND the resource
// belongs to the user. Any lookup failure counts as "not owned". With the
// resource fields omitted, CanPerform falls back to the plain role check.
func (e *Evaluator) CanPerform(ctx context.Context, u *models.User, action, resourceType, resourceID string) bool {
	if !HasPermission(u, action) {
		return false
	}

	if !strings.Contains(action, "OWN") || resourceType == "" || resourceID == "" {
		return true
	}

	owner, err := e.owners.ResourceOwner(ctx, resourceType, resourceID)
	if err != nil {
		e.log.Warn(ctx, "ownership lookup failed", "resource_type", resourceType, "resource_id", resourceID, "error", err)
		return false
	}

	return owner == u.ID
}
