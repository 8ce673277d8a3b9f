package handler

import (
	"Notely/config"
	"Notely/pkg/context"
	"Notely/pkg/response"
	"Notely/service"
	"Notely/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	if !a.Config.Jwt.Enabled {
		return
	}
	r.POST("/register", context.Wrap(a.Register))
	r.POST("/login", context.Wrap(a.Login))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := a.AuthService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	})
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	token, err := a.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
	return nil
}
