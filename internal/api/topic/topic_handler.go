package topic

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/mschaff99/Challenge-Foro-Hub/app/observability/metrics"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/api"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service TopicService
}

func NewTopicHandler(service TopicService, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// recordOp reports the operation counter and duration.
func recordOp(r *http.Request, op string, start time.Time) {
	attrs := metric.WithAttributes(attribute.String("operation", op))
	metrics.Get().TopicRequestsTotal.Add(r.Context(), 1, attrs)
	metrics.Get().TopicDurationSeconds.Record(r.Context(), time.Since(start).Seconds(), attrs)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := api.StatusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Topic operation failed", slog.Any("error", err))
		msg = "internal error"
	}
	api.ErrorResponse(w, r, status, msg)
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("topic id must be numeric: %w", types.ErrValidation)
	}
	return id, nil
}

// Create handles POST /topics.
//
// @Summary      Register a topic
// @Tags         topics
// @Accept       json
// @Produce      json
// @Param        request body CreateTopicRequest true "New topic"
// @Success      201 {object} types.Topic
// @Failure      400 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /topics [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TopicHandler").Start(r.Context(), "Create")
	defer span.End()
	start := time.Now()
	defer recordOp(r, "create", start)

	l := h.logger.With(slog.String("handler", "Create"))

	var req CreateTopicRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid topic request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	topic, err := h.service.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Register failed")
		h.respondError(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "Topic created")
	w.Header().Set("Location", fmt.Sprintf("/api/v1/topics/%d", topic.ID))
	api.WriteJSONResponse(w, r, http.StatusCreated, topic)
}

// List handles GET /topics.
//
// @Summary      List topics
// @Description  Topics ordered ascending by creation time, default page size 10
// @Tags         topics
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        size query int false "Page size"
// @Success      200 {object} types.TopicPage
// @Security     BearerAuth
// @Router       /topics [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TopicHandler").Start(r.Context(), "List")
	defer span.End()
	start := time.Now()
	defer recordOp(r, "list", start)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	result, err := h.service.List(ctx, page, size)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "List failed")
		h.respondError(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "Topics listed")
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// Detail handles GET /topics/{id}.
//
// @Summary      Topic detail
// @Tags         topics
// @Produce      json
// @Param        id path int true "Topic id"
// @Success      200 {object} types.Topic
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /topics/{id} [get]
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TopicHandler").Start(r.Context(), "Detail")
	defer span.End()
	start := time.Now()
	defer recordOp(r, "detail", start)

	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	topic, err := h.service.Detail(ctx, id)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			span.RecordError(err)
		}
		span.SetStatus(codes.Error, "Detail failed")
		h.respondError(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "Topic returned")
	api.WriteJSONResponse(w, r, http.StatusOK, topic)
}

// Update handles PUT /topics/{id}.
//
// @Summary      Partially update a topic
// @Description  Only fields present in the body overwrite stored values
// @Tags         topics
// @Accept       json
// @Produce      json
// @Param        id path int true "Topic id"
// @Param        request body UpdateTopicRequest true "Fields to update"
// @Success      200 {object} types.Topic
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /topics/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TopicHandler").Start(r.Context(), "Update")
	defer span.End()
	start := time.Now()
	defer recordOp(r, "update", start)

	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req UpdateTopicRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	topic, err := h.service.Update(ctx, id, req)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			span.RecordError(err)
		}
		span.SetStatus(codes.Error, "Update failed")
		h.respondError(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "Topic updated")
	api.WriteJSONResponse(w, r, http.StatusOK, topic)
}

// Delete handles DELETE /topics/{id}.
//
// @Summary      Delete a topic
// @Tags         topics
// @Param        id path int true "Topic id"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /topics/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TopicHandler").Start(r.Context(), "Delete")
	defer span.End()
	start := time.Now()
	defer recordOp(r, "delete", start)

	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			span.RecordError(err)
		}
		span.SetStatus(codes.Error, "Delete failed")
		h.respondError(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "Topic deleted")
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
