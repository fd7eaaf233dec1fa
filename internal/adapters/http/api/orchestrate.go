package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/okian/concierge/internal/domain/model"
	"github.com/okian/concierge/pkg/logger"
)

// OrchestrateHandler handles orchestration requests.
type OrchestrateHandler struct {
	deps         Dependencies
	maxBodyBytes int64
	log          logger.Logger
}

// NewOrchestrateHandler creates a new orchestration handler.
func NewOrchestrateHandler(deps Dependencies, maxBodyBytes int64, log logger.Logger) *OrchestrateHandler {
	return &OrchestrateHandler{deps: deps, maxBodyBytes: maxBodyBytes, log: log}
}

// HandleOrchestrate handles POST /v1/concierge/orchestrate requests.
func (h *OrchestrateHandler) HandleOrchestrate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithRequestID(r.Context(), chimiddleware.GetReqID(r.Context()))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge,
				fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooBig, tooBig.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}

	var in model.Input
	if err := json.Unmarshal(body, &in); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	if err := validateInput(in); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, err)
		return
	}

	out, err := h.deps.Orchestrate(ctx, in)
	if err != nil {
		h.log.Error(ctx, "orchestration failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternal, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func validateInput(in model.Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed %q", ErrValidation, fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
