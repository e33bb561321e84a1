package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"panel/internal/platform/middleware"
	"panel/internal/subuser/models"
	dErrors "panel/pkg/domain-errors"
	"panel/pkg/platform/httputil"
	"panel/pkg/requestcontext"
)

// Service defines the subuser operations exposed over HTTP.
type Service interface {
	Get(ctx context.Context, id int64) (*models.SubuserDetails, error)
	Update(ctx context.Context, subuserID int64, permissions []string) error
}

// Handler serves the client subuser endpoints.
type Handler struct {
	logger       *slog.Logger
	subusers     Service
	jwtValidator middleware.JWTValidator
}

// New creates a new subuser Handler.
func New(subusers Service, logger *slog.Logger, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		subusers:     subusers,
		jwtValidator: jwtValidator,
	}
}

// UpdatePermissionsRequest is the PATCH body. A missing permissions field is
// rejected; an empty list removes every permission.
type UpdatePermissionsRequest struct {
	Permissions *[]string `json:"permissions"`
}

// Register registers the subuser routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		r.Get("/api/client/servers/{server}/users/{subuser}", h.handleGet)
		r.Patch("/api/client/servers/{server}/users/{subuser}", h.handleUpdate)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	details, ok := h.authorize(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	details, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req UpdatePermissionsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid update subuser request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if req.Permissions == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "permissions is required"))
		return
	}

	subuserID := details.Subuser.ID
	if err := h.subusers.Update(ctx, subuserID, *req.Permissions); err != nil {
		if _, isDisplay := dErrors.AsDisplay(err); !isDisplay {
			h.logger.ErrorContext(ctx, "failed to update subuser",
				"request_id", requestID,
				"subuser_id", subuserID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	updated, err := h.subusers.Get(ctx, subuserID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

// authorize loads the subuser named in the path and checks that it belongs to
// the server in the path and that the caller owns that server or is a root
// admin. It writes the error response itself when it returns false.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (*models.SubuserDetails, bool) {
	ctx := r.Context()

	subuserID, err := strconv.ParseInt(chi.URLParam(r, "subuser"), 10, 64)
	if err != nil || subuserID <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid subuser id"))
		return nil, false
	}

	details, err := h.subusers.Get(ctx, subuserID)
	if err != nil {
		httputil.WriteError(w, err)
		return nil, false
	}

	server := details.Subuser.Server
	if server == nil || !matchesServer(chi.URLParam(r, "server"), details.Subuser.ServerID, server.UUID) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "subuser not found on this server"))
		return nil, false
	}

	caller := requestcontext.UserID(ctx)
	if !server.IsOwnedBy(caller) && !requestcontext.RootAdmin(ctx) {
		h.logger.WarnContext(ctx, "subuser access denied",
			"request_id", requestcontext.RequestID(ctx),
			"user_id", caller,
			"server_id", server.ID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "only the server owner can manage subusers"))
		return nil, false
	}
	return details, true
}

// matchesServer accepts either the numeric server ID or its UUID.
func matchesServer(param string, serverID int64, serverUUID uuid.UUID) bool {
	if id, err := strconv.ParseInt(param, 10, 64); err == nil {
		return id == serverID
	}
	parsed, err := uuid.Parse(param)
	return err == nil && parsed == serverUUID
}
