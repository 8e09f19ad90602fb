package handler

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"backoff_retrier/internal/errors"
	"backoff_retrier/internal/usecase"
)

type Handler struct {
	headerUseCase *usecase.HeaderUseCase
}

func NewHandler(uc *usecase.HeaderUseCase) *Handler {
	return &Handler{headerUseCase: uc}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/head", h.getHead)
	r.Get("/headers/{number}", h.getHeader)
}

func (h *Handler) getHead(w http.ResponseWriter, r *http.Request) {
	result, err := h.headerUseCase.Head(r.Context())
	if err != nil {
		writeError(w, err, "unexpected head error")
		return
	}
	writeJSON(w, result)
}

func (h *Handler) getHeader(w http.ResponseWriter, r *http.Request) {
	numberStr := chi.URLParam(r, "number")
	number, err := strconv.ParseUint(numberStr, 10, 64)
	if err != nil {
		zap.L().Error("invalid block number param", zap.Error(err))
		writeErrorJSON(w, http.StatusBadRequest, "invalid block number")
		return
	}
	result, err := h.headerUseCase.Execute(r.Context(), number)
	if err != nil {
		writeError(w, err, "unexpected header error")
		return
	}
	writeJSON(w, result)
}

func writeError(w http.ResponseWriter, err error, logMsg string) {
	var he errors.HTTPError
	if stderrors.As(err, &he) {
		if he.StatusCode() >= http.StatusInternalServerError {
			zap.L().Error(logMsg, zap.Error(err))
		}
		writeErrorJSON(w, he.StatusCode(), he.Error())
		return
	}
	zap.L().Error(logMsg, zap.Error(err))
	writeErrorJSON(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("failed to write JSON response", zap.Error(err))
	}
}

func writeErrorJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		zap.L().Error("failed to write JSON error response", zap.Error(err))
	}
}
