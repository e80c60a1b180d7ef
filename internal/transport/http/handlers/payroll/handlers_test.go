package payrollhandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"paydesk/internal/domain/payroll"
	"paydesk/internal/platform/metrics"
)

func newTestRouter() http.Handler {
	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		NewHandler(metrics.New()).RegisterRoutes(r)
	})
	return router
}

type errorResponse struct {
	Success bool `json:"success"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestHandleRun(t *testing.T) {
	body := `{
		"employees": [
			{"id": "1", "name": "Alice", "type": "FULL_TIME", "payRate": 4000},
			{"id": "2", "name": "Bob", "type": "PART_TIME", "payRate": 25},
			{"id": "3", "name": "Carol", "type": "CONTRACTOR", "payRate": 200}
		],
		"units": {"2": 80, "3": 20}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/run", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Payslips []payroll.Payslip `json:"payslips"`
			Summary  payroll.Summary   `json:"summary"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success response")
	}
	if len(resp.Data.Payslips) != 3 {
		t.Fatalf("expected 3 payslips, got %d", len(resp.Data.Payslips))
	}
	if resp.Data.Payslips[1].Employee.ID != "2" {
		t.Fatalf("expected payslips in input order, got %s second", resp.Data.Payslips[1].Employee.ID)
	}
	if !resp.Data.Payslips[1].Gross.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected part-time gross 2000, got %s", resp.Data.Payslips[1].Gross)
	}
	if resp.Data.Summary.Count != 3 {
		t.Fatalf("expected summary count 3, got %d", resp.Data.Summary.Count)
	}
}

func TestHandleRunHoursOutOfRange(t *testing.T) {
	body := `{
		"employees": [{"id": "2", "name": "Bob", "type": "PART_TIME", "payRate": 25}],
		"units": {"2": 121}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/run", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "hours_out_of_range" {
		t.Fatalf("expected hours_out_of_range error, got %+v", resp.Error)
	}
}

func TestHandleRunRejectsInvalidPayload(t *testing.T) {
	body := `{"employees": [{"id": "", "name": "Nobody", "type": "INTERN", "payRate": -5}]}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/run", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", resp.Error)
	}
}

func TestHandlePayslipPDF(t *testing.T) {
	body := `{
		"employee": {"id": "106", "name": "Frank Chen", "type": "CONTRACTOR", "payRate": 250, "unionMember": true},
		"units": 18
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/payslips/pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF body")
	}
}
