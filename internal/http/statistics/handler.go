package statistics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/moneymap/internal/http/ledger"
	"github.com/MrJamesThe3rd/moneymap/internal/http/respond"
	ledgerSvc "github.com/MrJamesThe3rd/moneymap/internal/ledger"
	"github.com/MrJamesThe3rd/moneymap/internal/statistics"
)

type Handler struct {
	ledgerSvc *ledgerSvc.Service
}

func NewHandler(svc *ledgerSvc.Service) *Handler {
	return &Handler{ledgerSvc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.report)
}

// report builds per-account statistics from the current ledger. The
// repeated "ignore" parameter replaces the default level-3 ignore list.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	filter, err := ledger.ParseFilter(r)
	if err != nil {
		http.Error(w, "invalid date: "+err.Error(), http.StatusBadRequest)
		return
	}

	ignored := statistics.DefaultIgnored
	if v, ok := r.URL.Query()["ignore"]; ok {
		ignored = v
	}

	entries, err := h.ledgerSvc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, statistics.Build(entries, ignored))
}
