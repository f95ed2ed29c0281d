package inbox

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// ListFeedInput holds the filters and paging of one feed request.
// Nil pointers and zero values mean "unfiltered".
type ListFeedInput struct {
	Direction   *domain.Direction
	ItemType    *domain.ItemKind
	KeyDevID    *uuid.UUID
	CoreAppID   *uuid.UUID
	SearchQuery string
	// SinceTs is an inclusive lower time bound in epoch milliseconds.
	SinceTs int64
	// Limit is the page size; zero selects the configured default and values
	// above the configured maximum are clamped to it.
	Limit int
	// BeforeTs is the exclusive upper time bound in epoch milliseconds. To
	// fetch the next page pass the timestamp of the last item received.
	BeforeTs *int64
}

// Validate checks all fields and collects all errors. A limit above the
// maximum page size is not an error; ListFeed clamps it.
func (i ListFeedInput) Validate() error {
	var errs []domain.FieldError

	if i.Direction != nil && !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be SENT or RECEIVED"})
	}
	if i.ItemType != nil && !i.ItemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be NOTE, KEY_DEV_ANSWER or CORE_APP_ANSWER"})
	}
	if i.KeyDevID != nil && i.CoreAppID != nil {
		errs = append(errs, domain.FieldError{Field: "coreAppId", Message: "cannot be combined with keyDevId"})
	}
	if i.SinceTs < 0 {
		errs = append(errs, domain.FieldError{Field: "sinceTs", Message: "must be non-negative"})
	}
	if i.BeforeTs != nil && *i.BeforeTs < 0 {
		errs = append(errs, domain.FieldError{Field: "beforeTs", Message: "must be non-negative"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// scope returns the parent restriction, if any.
func (i ListFeedInput) scope() *domain.ParentRef {
	switch {
	case i.KeyDevID != nil:
		return &domain.ParentRef{Kind: domain.ParentKeyDev, ID: *i.KeyDevID}
	case i.CoreAppID != nil:
		return &domain.ParentRef{Kind: domain.ParentCoreApp, ID: *i.CoreAppID}
	}
	return nil
}

// wants reports whether items of kind and dir pass the type and direction filters.
func (i ListFeedInput) wants(kind domain.ItemKind, dir domain.Direction) bool {
	if i.Direction != nil && *i.Direction != dir {
		return false
	}
	if i.ItemType != nil && *i.ItemType != kind {
		return false
	}
	return true
}
