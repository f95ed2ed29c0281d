package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
	"github.com/heartmarshall/devtrack-inbox/internal/service/inbox"
)

// feedService defines the minimal interface needed by InboxHandler.
type feedService interface {
	ListFeed(ctx context.Context, input inbox.ListFeedInput) (*inbox.ListFeedResult, error)
}

// InboxHandler serves the activity feed.
type InboxHandler struct {
	svc feedService
	log *slog.Logger
}

// NewInboxHandler creates an InboxHandler.
func NewInboxHandler(svc feedService, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{svc: svc, log: logger.With("handler", "inbox")}
}

// FeedResponse is the JSON body of GET /inbox.
type FeedResponse struct {
	Items        []itemResponse `json:"items"`
	NextBeforeTs *int64         `json:"nextBeforeTs"`
}

type itemResponse struct {
	Kind         string            `json:"kind"`
	Direction    string            `json:"direction"`
	ItemID       string            `json:"itemId"`
	QuestionID   *string           `json:"questionId,omitempty"`
	Timestamp    int64             `json:"timestamp"`
	Body         string            `json:"body"`
	AuthorName   string            `json:"authorName"`
	Recipients   []string          `json:"recipients"`
	Entity       entityRefResponse `json:"entity"`
	QuestionText *string           `json:"questionText,omitempty"`
}

type entityRefResponse struct {
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	Title      string `json:"title"`
	Identifier string `json:"identifier"`
}

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// List handles GET /inbox.
//
// Pages are recomputed on every call. Records written between two page
// fetches may be skipped or repeated near the page boundary.
func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseFeedQuery(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.ListFeed(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewFeedResponse(result))
}

// parseFeedQuery reads the feed filters from the query string. Syntax errors
// for every parameter are collected into one ValidationError; range checks
// are left to the service.
func parseFeedQuery(v url.Values) (inbox.ListFeedInput, error) {
	var (
		input inbox.ListFeedInput
		errs  []domain.FieldError
	)

	if s := v.Get("direction"); s != "" {
		d := domain.Direction(strings.ToUpper(s))
		input.Direction = &d
	}
	if s := v.Get("type"); s != "" {
		k := domain.ItemKind(strings.ToUpper(s))
		input.ItemType = &k
	}

	parseID := func(field string) *uuid.UUID {
		s := v.Get(field)
		if s == "" {
			return nil
		}
		id, err := uuid.Parse(s)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be a UUID"})
			return nil
		}
		return &id
	}
	input.KeyDevID = parseID("keyDevId")
	input.CoreAppID = parseID("coreAppId")

	input.SearchQuery = v.Get("q")

	parseInt := func(field string, bitSize int) (int64, bool) {
		s := v.Get(field)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseInt(s, 10, bitSize)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be a valid integer"})
			return 0, false
		}
		return n, true
	}
	if n, ok := parseInt("sinceTs", 64); ok {
		input.SinceTs = n
	}
	if n, ok := parseInt("beforeTs", 64); ok {
		input.BeforeTs = &n
	}
	if n, ok := parseInt("limit", 32); ok {
		input.Limit = int(n)
	}

	if len(errs) > 0 {
		return inbox.ListFeedInput{}, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// NewFeedResponse renders one feed page in the wire shape.
func NewFeedResponse(result *inbox.ListFeedResult) FeedResponse {
	resp := FeedResponse{
		Items:        make([]itemResponse, 0, len(result.Items)),
		NextBeforeTs: result.NextBeforeTs,
	}
	for _, it := range result.Items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}
	return resp
}

func toItemResponse(it *domain.InboxItem) itemResponse {
	var questionID *string
	if it.QuestionID != nil {
		s := it.QuestionID.String()
		questionID = &s
	}
	recipients := it.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	return itemResponse{
		Kind:       it.Kind.String(),
		Direction:  it.Direction.String(),
		ItemID:     it.ItemID.String(),
		QuestionID: questionID,
		Timestamp:  it.Timestamp,
		Body:       it.Body,
		AuthorName: it.AuthorName,
		Recipients: recipients,
		Entity: entityRefResponse{
			Kind:       it.Entity.Kind.String(),
			ID:         it.Entity.ID.String(),
			Title:      it.Entity.Title,
			Identifier: it.Entity.Identifier,
		},
		QuestionText: it.QuestionText,
	}
}

func (h *InboxHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation error"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
