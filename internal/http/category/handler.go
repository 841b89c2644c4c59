package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/http/respond"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	if cats == nil {
		cats = []category.Category{}
	}

	respond.JSON(w, http.StatusOK, cats)
}
