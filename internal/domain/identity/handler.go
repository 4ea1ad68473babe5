package identity

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medilive/medilive/internal/platform/apperr"
	"github.com/medilive/medilive/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	issuer *auth.Issuer
}

func NewHandler(svc *Service, issuer *auth.Issuer) *Handler {
	return &Handler{svc: svc, issuer: issuer}
}

// RegisterRoutes mounts auth endpoints on the given group. Signup and login
// are public; /me requires a verified token.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/signup", h.Signup)
	g.POST("/auth/login", h.Login)
	g.GET("/auth/me", h.Me)
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserType  string `json:"userType"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrValidation
	}

	u, err := h.svc.Register(c.Request().Context(), RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserType:  req.UserType,
	})
	if err != nil {
		return err
	}

	token, err := h.issuer.Issue(u.ID.String(), u.Email, u.UserType)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message:     "User created successfully",
		AccessToken: token,
		User:        u,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrValidation
	}

	u, err := h.svc.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.issuer.Issue(u.ID.String(), u.Email, u.UserType)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Message:     "Login successful",
		AccessToken: token,
		User:        u,
	})
}

// Me echoes back the identity carried by the verified token. It does not hit
// the database; the claims are the source of truth.
func (h *Handler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, map[string]string{
		"id":        auth.UserIDFromContext(ctx),
		"email":     auth.EmailFromContext(ctx),
		"user_type": auth.UserTypeFromContext(ctx),
	})
}
