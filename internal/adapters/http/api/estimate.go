package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	service "github.com/okian/tripace/internal/app"
	"github.com/okian/tripace/internal/domain/pace"
	"github.com/okian/tripace/pkg/logger"
)

// EstimateHandler handles finish-time calculations.
type EstimateHandler struct {
	deps         Dependencies
	maxBodyBytes int64
	logger       logger.Logger
}

// NewEstimateHandler creates a new estimate handler.
func NewEstimateHandler(deps Dependencies, maxBodyBytes int64, l logger.Logger) *EstimateHandler {
	return &EstimateHandler{deps: deps, maxBodyBytes: maxBodyBytes, logger: l}
}

// HandlePostEstimate handles POST /estimate requests.
func (h *EstimateHandler) HandlePostEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_estimate"
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, op, http.MethodPost)
		return
	}

	var req service.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", WrapKind(op, ErrPayloadTooLarge, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	res, err := h.deps.Calculate(r.Context(), req)
	if err != nil {
		var verrs pace.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Code:    "validation_failed",
				Message: verrs.Error(),
				Fields:  verrs,
			})
			return
		}
		h.logger.Error(r.Context(), "estimate failed",
			logger.String("request_id", w.Header().Get(RequestIDHeader)),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "computation_failed", WrapKind(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}
