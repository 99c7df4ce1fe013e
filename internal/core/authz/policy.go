package authz

// Policy functions evaluate role/ownership against an action. They are pure:
// no state, no persistence, no mutation. Callers turn a false answer into the
// operation's own authorization error so the message stays per-operation.

// CanEdit reports whether the actor owns the content.
// There is no moderator bypass for edits, only for deletes.
func CanEdit(actor Principal, ownerID int) bool {
	return actor.ID == ownerID
}

// CanModerate reports whether the actor may act on other users' content
func CanModerate(actor Principal) bool {
	return actor.IsModerator()
}

// CanDeleteContent reports whether the actor may soft-delete the content
func CanDeleteContent(actor Principal, ownerID int) bool {
	return CanEdit(actor, ownerID) || CanModerate(actor)
}

// CanRestoreContent reports whether the actor may restore soft-deleted content.
// Restore is reserved for the owner or an administrator: moderators may delete
// others' content but not bring it back.
func CanRestoreContent(actor Principal, ownerID int) bool {
	return CanEdit(actor, ownerID) || actor.IsAdmin()
}

// CanManageTags reports whether the actor may create, rename or delete tags
func CanManageTags(actor Principal) bool {
	return actor.IsAdmin()
}

// CanViewDeleted reports whether the actor may read a soft-deleted entity
func CanViewDeleted(actor Principal, ownerID int) bool {
	return CanEdit(actor, ownerID) || actor.IsAdmin()
}
