package controller

import (
	"errors"
	"net/http"

	"reward_system/domain"
	"reward_system/domain/domain_activity"
	"reward_system/domain/domain_reward"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityUsecase domain_activity.ActivityUsecase
}

func NewActivityController(uc domain_activity.ActivityUsecase) *ActivityController {
	return &ActivityController{ActivityUsecase: uc}
}

func (ac *ActivityController) List(c *gin.Context) {
	activities, err := ac.ActivityUsecase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Code: "INTERNAL_ERROR", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (ac *ActivityController) Get(c *gin.Context) {
	activity, err := ac.ActivityUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (ac *ActivityController) Create(c *gin.Context) {
	var meta domain_activity.ActivityMeta
	if err := c.ShouldBindJSON(&meta); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_PARAMETERS", Message: "活动参数格式错误"})
		return
	}
	activity, err := ac.ActivityUsecase.Create(c.Request.Context(), meta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Code: "INTERNAL_ERROR", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (ac *ActivityController) UpdateMeta(c *gin.Context) {
	var meta domain_activity.ActivityMeta
	if err := c.ShouldBindJSON(&meta); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_PARAMETERS", Message: "活动参数格式错误"})
		return
	}
	if err := ac.ActivityUsecase.UpdateMeta(c.Request.Context(), c.Param("id"), meta); err != nil {
		ac.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.SuccessResponse{Message: "活动信息已更新"})
}

func (ac *ActivityController) UpdateRule(c *gin.Context) {
	var config domain_reward.RuleConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_PARAMETERS", Message: "规则配置格式错误"})
		return
	}
	if err := ac.ActivityUsecase.UpdateRule(c.Request.Context(), c.Param("id"), config); err != nil {
		ac.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.SuccessResponse{Message: "结算规则已保存"})
}

func (ac *ActivityController) Delete(c *gin.Context) {
	if err := ac.ActivityUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		ac.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.SuccessResponse{Message: "活动已删除"})
}

func (ac *ActivityController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain_activity.ErrNotFound):
		c.JSON(http.StatusNotFound, domain.ErrorResponse{Code: "RESOURCE_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain_activity.ErrLastActivity):
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_OPERATION", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Code: "INTERNAL_ERROR", Message: err.Error()})
	}
}
