package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/audit"
	"github.com/BruksfildServices01/service-on-wheel/internal/auth"
	"github.com/BruksfildServices01/service-on-wheel/internal/dto"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/service-on-wheel/internal/infra/repository"
	"github.com/BruksfildServices01/service-on-wheel/internal/middleware"
	ucCredential "github.com/BruksfildServices01/service-on-wheel/internal/usecase/credential"
)

type AuthHandler struct {
	audit  *audit.Dispatcher
	tokens *auth.Issuer
}

func NewAuthHandler(audit *audit.Dispatcher, tokens *auth.Issuer) *AuthHandler {
	return &AuthHandler{audit: audit, tokens: tokens}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, ucCredential.MsgMissingFields)
		return
	}

	repo := infraRepo.NewUserGormRepository(middleware.Scope(c))
	uc := ucCredential.NewRegister(repo, h.audit)

	if _, err := uc.Execute(c.Request.Context(), req.Email, req.Password); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, ucCredential.MsgMissingFields)
		return
	}

	repo := infraRepo.NewUserGormRepository(middleware.Scope(c))
	uc := ucCredential.NewLogin(repo, h.tokens)

	res, err := uc.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.LoginResponse{
		Message: "Login successful",
		User: dto.UserDTO{
			ID:    res.User.ID,
			Email: res.User.Email,
		},
		Token: res.Token,
	})
}
