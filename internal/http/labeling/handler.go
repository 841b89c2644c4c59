package labeling

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/http/respond"
	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

type Handler struct {
	svc    *labeling.Service
	catSvc *category.Service
}

func NewHandler(svc *labeling.Service, catSvc *category.Service) *Handler {
	return &Handler{svc: svc, catSvc: catSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/pending", h.pending)
	r.Post("/", h.assign)
}

type signatureDTO struct {
	SenderBankName   string `json:"sender_bank_name"`
	SenderIBAN       string `json:"sender_iban"`
	ReceiverName     string `json:"receiver_name"`
	ReceiverIBAN     string `json:"receiver_iban"`
	BookingText      string `json:"booking_text"`
	PurposeSignature string `json:"purpose_signature"`
}

func toSignatureDTO(s transaction.Signature) signatureDTO {
	return signatureDTO{
		SenderBankName:   s.SenderBankName,
		SenderIBAN:       s.SenderIBAN,
		ReceiverName:     s.ReceiverName,
		ReceiverIBAN:     s.ReceiverIBAN,
		BookingText:      s.BookingText,
		PurposeSignature: s.PurposeSignature,
	}
}

func (d signatureDTO) signature() transaction.Signature {
	return transaction.Signature{
		SenderBankName:   d.SenderBankName,
		SenderIBAN:       d.SenderIBAN,
		ReceiverName:     d.ReceiverName,
		ReceiverIBAN:     d.ReceiverIBAN,
		BookingText:      d.BookingText,
		PurposeSignature: d.PurposeSignature,
	}
}

type labelResponse struct {
	ID        uuid.UUID         `json:"id"`
	Signature signatureDTO      `json:"signature"`
	Category  category.Category `json:"category"`
	CreatedAt time.Time         `json:"created_at"`
}

func toLabelResponse(l *labeling.Label) labelResponse {
	return labelResponse{
		ID:        l.ID,
		Signature: toSignatureDTO(l.Signature),
		Category:  l.Category,
		CreatedAt: l.CreatedAt,
	}
}

type pendingResponse struct {
	Pending []signatureDTO `json:"pending"`
	Labeled int            `json:"labeled"`
}

func (h *Handler) pending(w http.ResponseWriter, r *http.Request) {
	sigs, err := h.svc.Pending(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	count, err := h.svc.CountLabels(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := pendingResponse{
		Pending: make([]signatureDTO, len(sigs)),
		Labeled: count,
	}
	for i, s := range sigs {
		resp.Pending[i] = toSignatureDTO(s)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	labels, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]labelResponse, len(labels))
	for i, l := range labels {
		resp[i] = toLabelResponse(l)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type assignRequest struct {
	Signature  signatureDTO `json:"signature"`
	CategoryID *int         `json:"category_id"`
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.CategoryID == nil {
		http.Error(w, "category_id is required", http.StatusBadRequest)
		return
	}

	cat, err := h.catSvc.Get(r.Context(), *req.CategoryID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	l, err := h.svc.AssignLabel(r.Context(), req.Signature.signature(), *cat)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toLabelResponse(l))
}
