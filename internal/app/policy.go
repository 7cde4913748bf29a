package app

import "github.com/FeliCaldas/WeightTrackPro/internal/domain"

// CanAccessUser reports whether the caller may view or query the data
// of the target user: always their own, anyone's if admin. A nil
// caller never has access.
func CanAccessUser(caller *domain.User, targetID int64) bool {
	if caller == nil {
		return false
	}
	return caller.ID == targetID || caller.IsAdmin
}

// IsAdmin reports whether the caller holds admin privileges.
func IsAdmin(caller *domain.User) bool {
	return caller != nil && caller.IsAdmin
}
