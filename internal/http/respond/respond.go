package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err with the status matching its domain type.
func Error(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), Status(err))
}

func Status(err error) int {
	var (
		schemaErr    *transaction.SchemaError
		integrityErr *transaction.DataIntegrityError
		formatErr    *transaction.UnsupportedFormatError
	)

	switch {
	case errors.As(err, &schemaErr), errors.As(err, &integrityErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &formatErr):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, transaction.ErrNotFound), errors.Is(err, category.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
