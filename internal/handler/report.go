package handler

import (
	"fmt"
	"net/http"
)

// ExportTransactions streams one month of transactions as an XLSX file
func (h *Handler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	year, month := yearMonthParams(r)

	workbook, err := h.svc.Reports.MonthlyTransactionsWorkbook(r.Context(), userID, year, month)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	defer workbook.Close()

	fileName := fmt.Sprintf("transactions-%04d-%02d.xlsx", year, month)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if err := workbook.Write(w); err != nil {
		h.log.Errorf("Failed to stream report: %v", err)
	}
}
