package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/mschaff99/Challenge-Foro-Hub/app/observability/metrics"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/api"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

type AuthHandler struct {
	logger      *slog.Logger
	AuthService AuthService
}

func NewAuthHandler(authService AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		AuthService: authService,
	}
}

// Login handles POST /login.
//
// @Summary      Authenticate a user
// @Description  Verifies login and secret and returns a signed bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Login")
	defer span.End()

	l := h.logger.With(slog.String("handler", "Login"))

	var req LoginRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid login request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	metrics.Get().LoginRequestsTotal.Add(ctx, 1)

	token, err := h.AuthService.Login(ctx, req.Login, req.Secret)
	if err != nil {
		metrics.Get().LoginFailuresTotal.Add(ctx, 1)
		span.SetStatus(codes.Error, "Authentication failed")
		// Always the same generic message: never reveal whether the
		// login existed or the secret mismatched.
		api.ErrorResponse(w, r, http.StatusBadRequest, "authentication failed")
		return
	}

	span.SetStatus(codes.Ok, "Authenticated")
	api.WriteJSONResponse(w, r, http.StatusOK, LoginResponse{Token: token})
}

// Register handles POST /register.
//
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "New user"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Register")
	defer span.End()

	l := h.logger.With(slog.String("handler", "Register"))

	var req RegisterRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid register request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.AuthService.Register(ctx, req.Login, req.Secret)
	if err != nil {
		span.SetStatus(codes.Error, "Registration failed")
		switch {
		case errors.Is(err, types.ErrConflict):
			api.ErrorResponse(w, r, http.StatusBadRequest, "login already taken")
		case errors.Is(err, types.ErrValidation):
			api.ErrorResponse(w, r, http.StatusBadRequest, "login and secret are required")
		default:
			l.ErrorContext(ctx, "Registration failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusInternalServerError, "could not register user")
		}
		return
	}

	span.SetStatus(codes.Ok, "Registered")
	api.WriteJSONResponse(w, r, http.StatusCreated, RegisterResponse{ID: id.String(), Login: req.Login})
}
