// Package authz resolves whether a caller may perform an action on a
// resource. The rules live in one declarative table instead of per-handler
// conditionals, so every handler consults the same function before mutating
// anything.
package authz

type Resource string

const (
	ResourceCategory  Resource = "category"
	ResourceFilm      Resource = "film"
	ResourceComment   Resource = "comment"
	ResourceRating    Resource = "rating"
	ResourceFavorites Resource = "favorites"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionToggle   Action = "toggle"
)

// Caller is the identity resolved for the current request. A zero Caller is
// anonymous.
type Caller struct {
	UserID        string
	Authenticated bool
	IsAdmin       bool
}

// requirement is the capability an action demands of the caller.
type requirement int

const (
	denied requirement = iota
	public
	authenticated
	authorOnly    // admin does NOT satisfy this
	authorOrAdmin // admin bypasses ownership
	adminOnly
)

// table maps resource x action to a requirement. Actions absent from a
// resource's row are denied outright.
var table = map[Resource]map[Action]requirement{
	ResourceCategory: {
		ActionList:     public,
		ActionRetrieve: public,
		ActionCreate:   adminOnly,
		ActionUpdate:   adminOnly,
		ActionDelete:   adminOnly,
	},
	ResourceFilm: {
		ActionList:     public,
		ActionRetrieve: public,
		ActionCreate:   authenticated,
		ActionUpdate:   authorOrAdmin,
		ActionDelete:   authorOrAdmin,
		ActionToggle:   authenticated,
	},
	ResourceComment: {
		ActionCreate: authenticated,
		ActionUpdate: authorOnly,
		ActionDelete: authorOrAdmin,
	},
	ResourceRating: {
		ActionCreate: authenticated,
		ActionUpdate: authorOnly,
		ActionDelete: authorOnly,
	},
	ResourceFavorites: {
		ActionList: authenticated, // rows are additionally filtered to the caller's own
	},
}

// Allowed reports whether the caller may perform the action. ownerID is the
// owner of the targeted resource; pass "" for actions that are not
// ownership-scoped. The owner must be fetched before any mutation runs.
func Allowed(resource Resource, action Action, caller Caller, ownerID string) bool {
	req, ok := table[resource][action]
	if !ok {
		return false
	}

	switch req {
	case public:
		return true
	case authenticated:
		return caller.Authenticated
	case authorOnly:
		return caller.Authenticated && caller.UserID == ownerID
	case authorOrAdmin:
		return caller.Authenticated && (caller.IsAdmin || caller.UserID == ownerID)
	case adminOnly:
		return caller.Authenticated && caller.IsAdmin
	default:
		return false
	}
}
