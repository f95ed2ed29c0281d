package domain

// ParentKind identifies which tracked entity type a note or question hangs off.
type ParentKind string

const (
	ParentKeyDev  ParentKind = "KEY_DEV"
	ParentCoreApp ParentKind = "CORE_APP"
)

func (k ParentKind) String() string { return string(k) }

func (k ParentKind) IsValid() bool {
	switch k {
	case ParentKeyDev, ParentCoreApp:
		return true
	}
	return false
}

// ItemKind is the kind of record an inbox item was projected from.
type ItemKind string

const (
	ItemKindNote          ItemKind = "NOTE"
	ItemKindKeyDevAnswer  ItemKind = "KEY_DEV_ANSWER"
	ItemKindCoreAppAnswer ItemKind = "CORE_APP_ANSWER"
)

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindNote, ItemKindKeyDevAnswer, ItemKindCoreAppAnswer:
		return true
	}
	return false
}

// AnswerKind returns the answer item kind for a parent domain.
func AnswerKind(p ParentKind) ItemKind {
	if p == ParentCoreApp {
		return ItemKindCoreAppAnswer
	}
	return ItemKindKeyDevAnswer
}

// Direction is relative to the user whose inbox is being built.
type Direction string

const (
	DirectionSent     Direction = "SENT"
	DirectionReceived Direction = "RECEIVED"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionSent, DirectionReceived:
		return true
	}
	return false
}

// RecipientRole addresses whoever currently holds a role on the parent entity.
type RecipientRole string

const (
	RecipientRoleOwner     RecipientRole = "OWNER"
	RecipientRoleRequester RecipientRole = "REQUESTER"
)

func (r RecipientRole) String() string { return string(r) }

func (r RecipientRole) IsValid() bool {
	switch r {
	case RecipientRoleOwner, RecipientRoleRequester:
		return true
	}
	return false
}
