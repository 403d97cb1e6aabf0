package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"peopledir/internal/person/models"
	"peopledir/internal/person/service"
	id "peopledir/pkg/domain"
	"peopledir/pkg/platform/httputil"
	"peopledir/pkg/requestcontext"
)

// Service defines the person operations the HTTP layer depends on.
type Service interface {
	Create(ctx context.Context, params service.CreateParams) (*models.Person, error)
	Get(ctx context.Context, personID id.PersonID) (*models.Person, error)
	List(ctx context.Context) ([]*models.Person, error)
}

// Handler wires person endpoints to the person service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a person handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts person endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/persons", h.HandleCreate)
	r.Get("/persons", h.HandleList)
	r.Get("/persons/{personID}", h.HandleGet)
}

// HandleCreate handles POST /persons requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CreatePersonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	person, err := h.service.Create(ctx, service.CreateParams{
		Name:      req.Name,
		BirthDate: req.ParsedBirthDate(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "person creation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "person created",
		"request_id", requestID,
		"person_id", person.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, FromPerson(person))
}

// HandleGet handles GET /persons/{personID} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	personID, err := id.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	person, err := h.service.Get(ctx, personID)
	if err != nil {
		h.logger.ErrorContext(ctx, "person lookup failed",
			"request_id", requestID,
			"person_id", personID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromPerson(person))
}

// HandleList handles GET /persons requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	persons, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "person listing failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromPersons(persons))
}
