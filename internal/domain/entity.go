package domain

import "github.com/google/uuid"

// ParentRef points at a KeyDev or CoreApp by kind and id.
type ParentRef struct {
	Kind ParentKind
	ID   uuid.UUID
}

// Entity is a tracked parent record (KeyDev or CoreApp). Both kinds share
// the fields the inbox reads.
type Entity struct {
	Kind        ParentKind
	ID          uuid.UUID
	Title       string
	Identifier  string
	OwnerID     uuid.UUID
	RequesterID *uuid.UUID
}

// Ref returns the tagged reference exposed on inbox items.
func (e *Entity) Ref() EntityRef {
	return EntityRef{
		Kind:       e.Kind,
		ID:         e.ID,
		Title:      e.Title,
		Identifier: e.Identifier,
	}
}

// HolderOf returns the user holding role on the entity, if any.
func (e *Entity) HolderOf(role RecipientRole) (uuid.UUID, bool) {
	switch role {
	case RecipientRoleOwner:
		return e.OwnerID, e.OwnerID != uuid.Nil
	case RecipientRoleRequester:
		if e.RequesterID == nil || *e.RequesterID == uuid.Nil {
			return uuid.Nil, false
		}
		return *e.RequesterID, true
	}
	return uuid.Nil, false
}

// Recipient is how a note or answer addresses its reader. It is a closed
// set: RecipientUser or RecipientByRole.
type Recipient interface {
	isRecipient()
}

// RecipientUser addresses one user explicitly.
type RecipientUser struct {
	UserID uuid.UUID
}

// RecipientByRole addresses whoever holds Role on the parent entity.
type RecipientByRole struct {
	Role RecipientRole
}

func (RecipientUser) isRecipient()   {}
func (RecipientByRole) isRecipient() {}

// ResolveRecipient returns the user a recipient points at on parent.
// A nil recipient or an unfilled role resolves to nothing.
func ResolveRecipient(r Recipient, parent *Entity) (uuid.UUID, bool) {
	switch v := r.(type) {
	case RecipientUser:
		return v.UserID, v.UserID != uuid.Nil
	case RecipientByRole:
		if parent == nil {
			return uuid.Nil, false
		}
		return parent.HolderOf(v.Role)
	}
	return uuid.Nil, false
}

// RecipientRoleText returns the role name for role-addressed recipients,
// used by note search.
func RecipientRoleText(r Recipient) string {
	if v, ok := r.(RecipientByRole); ok {
		return v.Role.String()
	}
	return ""
}
