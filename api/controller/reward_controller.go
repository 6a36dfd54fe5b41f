package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"reward_system/domain"
	"reward_system/domain/domain_activity"
	"reward_system/domain/domain_reward"
	"reward_system/usecase/usecase_reward"
	"reward_system/util/tabular"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RewardController struct {
	RewardUsecase *usecase_reward.RewardUsecase
}

func NewRewardController(uc *usecase_reward.RewardUsecase) *RewardController {
	return &RewardController{RewardUsecase: uc}
}

type computeRequest struct {
	ActivityID string `form:"activity_id" binding:"required"`
	UseSample  bool   `form:"sample"`
}

type computeResponse struct {
	Columns []string              `json:"columns"`
	Rows    []domain_reward.Row   `json:"rows"`
	Summary domain_reward.Summary `json:"summary"`
}

// Compute 上传作品数据并按活动生效规则结算，返回结果表与汇总指标
func (rc *RewardController) Compute(c *gin.Context) {
	result, summary, _, ok := rc.compute(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, computeResponse{Columns: result.Columns, Rows: result.Rows, Summary: summary})
}

// Export 结算并导出为 xlsx 附件
func (rc *RewardController) Export(c *gin.Context) {
	result, _, activity, ok := rc.compute(c)
	if !ok {
		return
	}

	payload, err := tabular.BuildWorkbook(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Code: "INTERNAL_ERROR", Message: "导出文件生成失败: " + err.Error()})
		return
	}

	filename := activity.Name + "_结算结果.xlsx"
	fallback := tabular.FileSlug(activity.Name) + "_result.xlsx"
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, url.PathEscape(filename)))
	c.Data(http.StatusOK, xlsxContentType, payload)
}

func (rc *RewardController) compute(c *gin.Context) (domain_reward.Table, domain_reward.Summary, *domain_activity.Activity, bool) {
	var req computeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_PARAMETERS", Message: "缺少必要参数: activity_id"})
		return domain_reward.Table{}, domain_reward.Summary{}, nil, false
	}

	table, ok := rc.readTable(c, req.UseSample)
	if !ok {
		return domain_reward.Table{}, domain_reward.Summary{}, nil, false
	}

	result, summary, activity, err := rc.RewardUsecase.ComputeForActivity(c.Request.Context(), req.ActivityID, table)
	if err != nil {
		rc.writeError(c, err)
		return domain_reward.Table{}, domain_reward.Summary{}, nil, false
	}
	return result, summary, activity, true
}

// readTable 读取上传文件并解析为表格；未上传且指定 sample 时使用内置示例数据
func (rc *RewardController) readTable(c *gin.Context, useSample bool) (domain_reward.Table, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if !useSample {
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_PARAMETERS", Message: "缺少数据文件，请上传 CSV 或 Excel"})
			return domain_reward.Table{}, false
		}
		table, err := tabular.SampleTable()
		if err != nil {
			c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Code: "INTERNAL_ERROR", Message: "示例数据加载失败: " + err.Error()})
			return domain_reward.Table{}, false
		}
		return table, true
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_FILE", Message: "文件读取失败: " + err.Error()})
		return domain_reward.Table{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_FILE", Message: "文件读取失败: " + err.Error()})
		return domain_reward.Table{}, false
	}

	table, err := tabular.Parse(data, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		return domain_reward.Table{}, false
	}
	return table, true
}

func (rc *RewardController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain_reward.ErrMissingColumns), errors.Is(err, domain_reward.ErrMissingIdentity):
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Code: "MISSING_COLUMNS", Message: err.Error()})
	case errors.Is(err, domain_activity.ErrNotFound):
		c.JSON(http.StatusNotFound, domain.ErrorResponse{Code: "RESOURCE_NOT_FOUND", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Code: "INTERNAL_ERROR", Message: "计算出错: " + err.Error()})
	}
}
