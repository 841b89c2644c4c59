package importcsv

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/moneymap/internal/http/respond"
	"github.com/MrJamesThe3rd/moneymap/internal/importer"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

const maxUploadSize = 32 << 20

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importFile)
}

type importResponse struct {
	Filename string `json:"filename"`
	Parsed   int    `json:"parsed"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	txs, err := h.importSvc.Import(header.Filename, file)
	if err != nil {
		slog.Warn("import rejected", "file", header.Filename, "error", err)
		respond.Error(w, err)

		return
	}

	result, err := h.txSvc.Ingest(r.Context(), txs)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{
		Filename: header.Filename,
		Parsed:   len(txs),
		Inserted: result.Inserted,
		Skipped:  result.Skipped,
	})
}
