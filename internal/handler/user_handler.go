package handler

import (
	"errors"
	"net/http"
	"strings"

	"planner/internal/auth"
	"planner/internal/middleware"
	"planner/internal/model"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	accounts     AccountService
	tokens       *auth.TokenManager
	cookieSecure bool
	logger       *zap.Logger
}

func NewUserHandler(accounts AccountService, tokens *auth.TokenManager, cookieSecure bool, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		accounts:     accounts,
		tokens:       tokens,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

type RegisterRequest struct {
	Username  string `form:"username" json:"username"`
	Password1 string `form:"password1" json:"password1"`
	Password2 string `form:"password2" json:"password2"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Next     string `form:"next" json:"next"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// AuthResponse is returned to JSON clients instead of the redirect.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FormResponse describes an account form.
type FormResponse struct {
	Form   string   `json:"form"`
	Fields []string `json:"fields"`
	Next   string   `json:"next,omitempty"`
}

func (h *UserHandler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, FormResponse{Form: "register", Fields: []string{"username", "password1", "password2"}})
}

func (h *UserHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, FormResponse{
		Form:   "login",
		Fields: []string{"username", "password"},
		Next:   safeNext(c.Query("next")),
	})
}

// Register godoc
// @Summary      Register
// @Description  Creates an account and starts a session
// @Tags         Users
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Credentials"
// @Success      201      {object}  AuthResponse
// @Success      303
// @Failure      400      {object}  ErrorResponse
// @Router       /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), service.RegisterInput{
		Username:  req.Username,
		Password1: req.Password1,
		Password2: req.Password2,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.startSession(c, user, http.StatusCreated, "/")
}

// Login godoc
// @Summary      Log in
// @Tags         Users
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  AuthResponse
// @Success      303
// @Failure      401      {object}  ErrorResponse
// @Router       /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	next := safeNext(req.Next)
	if next == "" {
		next = safeNext(c.Query("next"))
	}
	if next == "" {
		next = "/"
	}
	h.startSession(c, user, http.StatusOK, next)
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

// startSession issues a token. JSON clients get it in the body, browsers get
// the session cookie and a redirect.
func (h *UserHandler) startSession(c *gin.Context, user *model.User, jsonStatus int, redirectTo string) {
	token, err := h.tokens.Generate(auth.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if c.ContentType() == gin.MIMEJSON {
		c.JSON(jsonStatus, AuthResponse{
			Token: token,
			User:  UserResponse{ID: user.ID, Username: user.Username},
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(h.tokens.TTL().Seconds()), "/", "", h.cookieSecure, true)
	c.Redirect(http.StatusSeeOther, redirectTo)
}

// safeNext only allows local absolute paths as a post-login target.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
