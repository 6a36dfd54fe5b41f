package controller

import (
	"net/http"

	"reward_system/bootstrap"
	"reward_system/domain"
	"reward_system/domain/domain_operator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginController struct {
	LoginUsecase domain_operator.LoginUsecase
	Env          *bootstrap.Env
}

func (lc *LoginController) Login(c *gin.Context) {
	var request domain_operator.LoginRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_PARAMETERS", Message: "缺少必要参数: name/password"})
		return
	}

	operator, err := lc.LoginUsecase.GetOperatorByName(c.Request.Context(), request.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Code: "INTERNAL_ERROR", Message: err.Error()})
		return
	}
	if operator == nil {
		c.JSON(http.StatusNotFound, domain.ErrorResponse{Code: "RESOURCE_NOT_FOUND", Message: "操作员不存在"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(request.Password)) != nil {
		c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Code: "UNAUTHORIZED", Message: "用户名或密码错误"})
		return
	}

	accessToken, err := lc.LoginUsecase.CreateAccessToken(operator, lc.Env.AccessTokenSecret, lc.Env.AccessTokenExpiryHour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Code: "INTERNAL_ERROR", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain_operator.LoginResponse{AccessToken: accessToken})
}
