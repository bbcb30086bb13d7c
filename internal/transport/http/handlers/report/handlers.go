package reporthandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"sweldo/internal/transport/http/api"
	"sweldo/internal/transport/http/middleware"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/reports/computation", h.HandleComputationReport)
	})
}

type reportLine struct {
	Label  string          `json:"label"`
	Detail string          `json:"detail"`
	Amount decimal.Decimal `json:"amount"`
}

type computationReportRequest struct {
	Title        string       `json:"title"`
	EmployeeName string       `json:"employeeName"`
	Lines        []reportLine `json:"lines"`
}

// HandleComputationReport renders submitted computation results as a PDF
// summary and streams it back.
func (h *Handler) HandleComputationReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req computationReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return
	}
	if len(req.Lines) == 0 {
		api.FailField(w, http.StatusUnprocessableEntity, "missing_input", "at least one line item is required", "lines", requestID)
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Wage Computation Summary"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if name := strings.TrimSpace(req.EmployeeName); name != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Detail", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount (PHP)", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	total := decimal.Zero
	for _, line := range req.Lines {
		pdf.CellFormat(90, 8, line.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, line.Detail, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, line.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
		total = total.Add(line.Amount)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(150, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, total.StringFixed(2), "1", 1, "R", false, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="computation-summary.pdf"`)
	if err := pdf.Output(w); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_generate_failed", "failed to generate report", requestID)
	}
}
