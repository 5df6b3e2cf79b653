package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/pkg/response"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// pathID parses the {id} route parameter. Writes the 400 itself and
// returns false when the parameter is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps domain errors onto the response envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrUnknownRole),
		errors.Is(err, services.ErrUnknownStatus),
		errors.Is(err, services.ErrUnknownBoxSize),
		errors.Is(err, services.ErrUnknownCommune),
		errors.Is(err, services.ErrMissingFailureReason),
		errors.Is(err, services.ErrDriverNotFound):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
