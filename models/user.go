package models

// IAMUser is a row returned by iam.users.search. Only the attributes the
// client relies on are decoded.
type IAMUser struct {
	// Login is the user's login name, used as the search key.
	Login string `json:"login"`

	// RolesName is the single role name attached to the user. Authorization
	// compares it to the configured admin role with exact string equality.
	RolesName string `json:"roles_name"`
}
