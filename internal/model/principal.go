package model

// Principal is the authenticated identity carried by the session boundary.
type Principal struct {
	UserID   int64
	FullName string
	Role     UserRole
}
