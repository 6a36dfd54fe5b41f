package route

import (
	"time"

	"reward_system/api/controller"
	"reward_system/domain"
	"reward_system/mongo"
	"reward_system/repository/repository_activity"
	"reward_system/usecase/usecase_activity"

	"github.com/gin-gonic/gin"
)

func NewActivityRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository_activity.NewActivityRepository(db, domain.CollectionActivity)

	usecase := usecase_activity.NewActivityUsecase(repo, timeout)
	ctrl := controller.NewActivityController(usecase)

	activityGroup := group.Group("/activities")
	{
		activityGroup.GET("", ctrl.List)
		activityGroup.POST("", ctrl.Create)
		activityGroup.GET("/:id", ctrl.Get)
		activityGroup.PUT("/:id/meta", ctrl.UpdateMeta)
		activityGroup.PUT("/:id/rule", ctrl.UpdateRule)
		activityGroup.DELETE("/:id", ctrl.Delete)
	}
}
