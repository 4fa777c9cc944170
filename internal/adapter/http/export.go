package httpadapter

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"adboard/internal/export"
)

// handleInvoicesExport streams an xlsx workbook of a campaign's
// invoiced line items. The workbook is built in memory first so a build
// failure can still answer with a proper status code.
func (h *Handler) handleInvoicesExport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.CampaignInvoiceRows(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = export.WriteInvoices(&buf, id, rows); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(id, time.Now())))
	_, _ = w.Write(buf.Bytes())
}
