package ledger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/http/respond"
	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/rebuild", h.rebuild)
}

type entryResponse struct {
	TransactionID       string            `json:"transaction_id"`
	LabelID             uuid.UUID         `json:"label_id"`
	BookingDate         string            `json:"booking_date"`
	SenderIBAN          string            `json:"sender_iban"`
	ReceiverName        string            `json:"receiver_name"`
	BookingText         string            `json:"booking_text"`
	Purpose             string            `json:"purpose"`
	Amount              decimal.Decimal   `json:"amount"`
	Currency            string            `json:"currency"`
	BalanceAfterBooking decimal.Decimal   `json:"balance_after_booking"`
	Category            category.Category `json:"category"`
}

func toEntryResponse(e *ledger.Entry) entryResponse {
	tx := e.Transaction

	return entryResponse{
		TransactionID:       tx.ID,
		LabelID:             e.LabelID,
		BookingDate:         tx.BookingDate.Format(time.DateOnly),
		SenderIBAN:          tx.SenderIBAN,
		ReceiverName:        tx.ReceiverName,
		BookingText:         tx.BookingText,
		Purpose:             tx.Purpose,
		Amount:              tx.Amount,
		Currency:            tx.Currency,
		BalanceAfterBooking: tx.BalanceAfterBooking,
		Category:            e.Category,
	}
}

// ParseFilter reads the optional from/to query parameters (YYYY-MM-DD).
func ParseFilter(r *http.Request) (ledger.ListFilter, error) {
	var filter ledger.ListFilter

	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, err
		}

		filter.From = t
	}

	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, err
		}

		filter.To = t
	}

	return filter, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r)
	if err != nil {
		http.Error(w, "invalid date: "+err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type rebuildResponse struct {
	Entries int `json:"entries"`
}

func (h *Handler) rebuild(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Rebuild(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, rebuildResponse{Entries: n})
}
