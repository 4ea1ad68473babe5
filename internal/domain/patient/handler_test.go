package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medilive/medilive/internal/domain/identity"
	"github.com/medilive/medilive/internal/platform/apperr"
	"github.com/medilive/medilive/internal/platform/auth"
)

func requestAs(t *testing.T, actorID, userType, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	ctx := req.Context()
	ctx = context.WithValue(ctx, auth.UserIDKey, actorID)
	ctx = context.WithValue(ctx, auth.UserEmail, "user@example.com")
	ctx = context.WithValue(ctx, auth.UserTypeKey, userType)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerCreate(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	c, rec := requestAs(t, uuid.NewString(), "doctor", http.MethodPost, "/api/patients",
		`{"name":"John Doe","age":42,"gender":"male","diagnosis":"flu"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		Patient struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"patient"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Patient created successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Patient.Status != "Active" {
		t.Errorf("expected default status, got %q", resp.Patient.Status)
	}
	if strings.Contains(rec.Body.String(), "doctor_id") {
		t.Error("response leaks internal ownership column")
	}
}

func TestHandlerCreate_NonDoctor(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	c, _ := requestAs(t, uuid.NewString(), "caretaker", http.MethodPost, "/api/patients",
		`{"name":"John Doe","age":42,"gender":"male"}`)
	err := h.Create(c)
	if status := apperr.Status(err); status != http.StatusForbidden {
		t.Errorf("expected 403, got %d (%v)", status, err)
	}
}

func TestHandlerList_BareArray(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)
	docID := uuid.NewString()

	c, _ := requestAs(t, docID, "doctor", http.MethodPost, "/api/patients",
		`{"name":"John Doe","age":42,"gender":"male"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}

	c, rec := requestAs(t, docID, "doctor", http.MethodGet, "/api/patients", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}

	var patients []Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &patients); err != nil {
		t.Fatalf("expected a bare array: %v", err)
	}
	if len(patients) != 1 {
		t.Errorf("expected 1 patient, got %d", len(patients))
	}
}

func TestHandlerList_EmptyArray(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	c, rec := requestAs(t, uuid.NewString(), "doctor", http.MethodGet, "/api/patients", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

func TestHandlerGet_BadID(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	c, _ := requestAs(t, uuid.NewString(), "doctor", http.MethodGet, "/api/patients/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	if status := apperr.Status(err); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d (%v)", status, err)
	}
}

func TestHandlerGet_Detail(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)
	docID := uuid.NewString()

	c, rec := requestAs(t, docID, "doctor", http.MethodPost, "/api/patients",
		`{"name":"John Doe","age":42,"gender":"male"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	var created struct {
		Patient struct {
			ID string `json:"id"`
		} `json:"patient"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	c, _ = requestAs(t, docID, "doctor", http.MethodPost, "/api/patients/"+created.Patient.ID+"/vitals",
		`{"heartRate":72,"bloodPressure":"120/80"}`)
	c.SetParamNames("id")
	c.SetParamValues(created.Patient.ID)
	if err := h.AddVitals(c); err != nil {
		t.Fatalf("add vitals: %v", err)
	}

	c, rec = requestAs(t, docID, "doctor", http.MethodGet, "/api/patients/"+created.Patient.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(created.Patient.ID)
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}

	var detail struct {
		ID     string `json:"id"`
		Vitals []struct {
			HeartRate     *int    `json:"heartRate"`
			BloodPressure *string `json:"bloodPressure"`
		} `json:"vitals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(detail.Vitals) != 1 || detail.Vitals[0].HeartRate == nil || *detail.Vitals[0].HeartRate != 72 {
		t.Errorf("unexpected detail %+v", detail)
	}
}

func TestHandlerAssignCaretaker(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)
	docID := uuid.NewString()

	c, rec := requestAs(t, docID, "doctor", http.MethodPost, "/api/patients",
		`{"name":"John Doe","age":42,"gender":"male"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	var created struct {
		Patient struct {
			ID string `json:"id"`
		} `json:"patient"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	f.users.users = append(f.users.users, &identity.User{
		ID:       uuid.New(),
		Email:    "care@example.com",
		UserType: "caretaker",
	})

	c, rec = requestAs(t, docID, "doctor", http.MethodPost, "/api/patients/"+created.Patient.ID+"/assign-caretaker",
		`{"caretakerEmail":"care@example.com"}`)
	c.SetParamNames("id")
	c.SetParamValues(created.Patient.ID)
	if err := h.AssignCaretaker(c); err != nil {
		t.Fatalf("assign caretaker: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Caretaker assigned successfully") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestHandlerAssignCaretaker_Unknown(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)
	docID := uuid.NewString()

	c, rec := requestAs(t, docID, "doctor", http.MethodPost, "/api/patients",
		`{"name":"John Doe","age":42,"gender":"male"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	var created struct {
		Patient struct {
			ID string `json:"id"`
		} `json:"patient"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	c, _ = requestAs(t, docID, "doctor", http.MethodPost, "/api/patients/"+created.Patient.ID+"/assign-caretaker",
		`{"caretakerEmail":"ghost@example.com"}`)
	c.SetParamNames("id")
	c.SetParamValues(created.Patient.ID)

	err := h.AssignCaretaker(c)
	if status := apperr.Status(err); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d (%v)", status, err)
	}
}
