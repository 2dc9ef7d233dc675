package user

// Capability checks shared by the API layer and the services. Pure
// functions over their arguments so the rules live in exactly one place.

// CanEditUser reports whether actor may edit target's account.
// Admin accounts may only be edited by themselves.
func CanEditUser(actor, target User) bool {
	if target.Role == RoleAdmin && target.ID != actor.ID {
		return false
	}

	return true
}

// CanBanUser reports whether actor may ban or unban target.
// Admins can never be banned, and nobody bans themselves.
func CanBanUser(actor, target User) bool {
	if target.Role == RoleAdmin || target.ID == actor.ID {
		return false
	}

	return true
}

// CanModerateFacility reports whether actor may approve or reject
// facility listings.
func CanModerateFacility(actor User) bool {
	return actor.Role == RoleAdmin
}

// CanToggleVisibility reports whether actor may change a facility's
// public listing flag. Owners may only toggle facilities that passed
// moderation; admins may always toggle.
func CanToggleVisibility(actor User, ownerID string, approved bool) bool {
	if actor.Role == RoleAdmin {
		return true
	}

	return actor.ID == ownerID && approved
}

// CanCancelBooking reports whether actor may cancel a booking owned by
// ownerID.
func CanCancelBooking(actor User, ownerID string) bool {
	return actor.Role == RoleAdmin || actor.ID == ownerID
}
