package payrollhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"paydesk/internal/domain/payroll"
	"paydesk/internal/platform/metrics"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	Metrics *metrics.Collector
}

func NewHandler(collector *metrics.Collector) *Handler {
	return &Handler{Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/run", h.handleRun)
		r.Post("/payslips/pdf", h.handlePayslipPDF)
	})
}

type runPayload struct {
	Employees []payroll.Employee         `json:"employees"`
	Units     map[string]decimal.Decimal `json:"units"`
}

type payslipPayload struct {
	Employee payroll.Employee `json:"employee"`
	Units    decimal.Decimal  `json:"units"`
}

func validateEmployee(v *shared.Validator, field string, e payroll.Employee) {
	v.Required(field+".id", e.ID, "id is required")
	if !e.Type.Valid() {
		v.Add(field+".type", "must be one of FULL_TIME, PART_TIME, CONTRACTOR")
	}
	if e.PayRate.IsNegative() {
		v.Add(field+".payRate", "must not be negative")
	}
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload runPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	validator := shared.NewValidator()
	if len(payload.Employees) == 0 {
		validator.Add("employees", "at least one employee is required")
	}
	for i, e := range payload.Employees {
		validateEmployee(validator, fmt.Sprintf("employees[%d]", i), e)
	}
	if validator.Reject(w, reqID) {
		return
	}

	payslips, err := payroll.Run(payload.Employees, payload.Units)
	if err != nil {
		h.failRun(w, err, reqID)
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordPayrollRun(len(payslips))
	}
	api.Success(w, map[string]any{
		"payslips": payslips,
		"summary":  payroll.Summarize(payslips),
	}, reqID)
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload payslipPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	validator := shared.NewValidator()
	validateEmployee(validator, "employee", payload.Employee)
	if validator.Reject(w, reqID) {
		return
	}

	slip, err := payroll.BuildPayslip(payload.Employee, payload.Units)
	if err != nil {
		h.failRun(w, err, reqID)
		return
	}

	var buf bytes.Buffer
	if err := payroll.WritePDF(slip, &buf); err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "payslip rendering failed", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", payload.Employee.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) failRun(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, payroll.ErrHoursOutOfRange):
		api.Fail(w, http.StatusBadRequest, "hours_out_of_range", err.Error(), reqID)
	case errors.Is(err, payroll.ErrUnknownEmployeeType):
		api.Fail(w, http.StatusBadRequest, "unknown_employee_type", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "payroll run failed", reqID)
	}
}
