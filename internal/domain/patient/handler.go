package patient

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medilive/medilive/internal/platform/apperr"
	"github.com/medilive/medilive/internal/platform/auth"
	"github.com/medilive/medilive/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/patients", h.List)
	g.POST("/patients", h.Create)
	g.GET("/patients/:id", h.Get)
	g.POST("/patients/:id/vitals", h.AddVitals)
	g.POST("/patients/:id/assign-caretaker", h.AssignCaretaker)
}

// patientID parses the path id. An unparseable id behaves like a missing
// patient.
func patientID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.ErrNotFound
	}
	return id, nil
}

type createRequest struct {
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Diagnosis *string `json:"diagnosis"`
	Status    string  `json:"status"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrValidation
	}

	actor := auth.ActorFromContext(c.Request().Context())
	p, err := h.svc.Create(c.Request().Context(), actor, CreateInput{
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Diagnosis: req.Diagnosis,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Patient created successfully",
		"patient": p,
	})
}

// List responds with a bare array of the patients visible to the caller.
func (h *Handler) List(c echo.Context) error {
	actor := auth.ActorFromContext(c.Request().Context())
	page := pagination.FromContext(c)

	patients, err := h.svc.List(c.Request().Context(), actor, page.Limit, page.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return err
	}

	actor := auth.ActorFromContext(c.Request().Context())
	detail, err := h.svc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

type vitalsRequest struct {
	HeartRate     *int     `json:"heartRate"`
	BloodPressure *string  `json:"bloodPressure"`
	Temperature   *float64 `json:"temperature"`
	OxygenLevel   *int     `json:"oxygenLevel"`
}

func (h *Handler) AddVitals(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return err
	}

	var req vitalsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrValidation
	}

	actor := auth.ActorFromContext(c.Request().Context())
	v, err := h.svc.AddVitals(c.Request().Context(), actor, id, VitalsInput{
		HeartRate:     req.HeartRate,
		BloodPressure: req.BloodPressure,
		Temperature:   req.Temperature,
		OxygenLevel:   req.OxygenLevel,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Vitals added successfully",
		"vitals":  v,
	})
}

type assignCaretakerRequest struct {
	CaretakerEmail string `json:"caretakerEmail"`
}

func (h *Handler) AssignCaretaker(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return err
	}

	var req assignCaretakerRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrValidation
	}

	actor := auth.ActorFromContext(c.Request().Context())
	if err := h.svc.AssignCaretaker(c.Request().Context(), actor, id, req.CaretakerEmail); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Caretaker assigned successfully",
	})
}
