package route

import (
	"time"

	"reward_system/api/controller"
	"reward_system/domain"
	"reward_system/mongo"
	"reward_system/repository/repository_activity"
	"reward_system/usecase/usecase_reward"

	"github.com/gin-gonic/gin"
)

func NewRewardRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository_activity.NewActivityRepository(db, domain.CollectionActivity)

	usecase := usecase_reward.NewRewardUsecase(repo, timeout)
	ctrl := controller.NewRewardController(usecase)

	rewardGroup := group.Group("/rewards")
	{
		rewardGroup.POST("/compute", ctrl.Compute)
		rewardGroup.POST("/export", ctrl.Export)
	}
}
