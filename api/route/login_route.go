package route

import (
	"time"

	"reward_system/api/controller"
	"reward_system/bootstrap"
	"reward_system/domain"
	"reward_system/mongo"
	"reward_system/repository/repository_operator"
	"reward_system/usecase/usecase_operator"

	"github.com/gin-gonic/gin"
)

func NewLoginRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository_operator.NewOperatorRepository(db, domain.CollectionOperator)
	lc := &controller.LoginController{
		LoginUsecase: usecase_operator.NewLoginUsecase(repo, timeout),
		Env:          env,
	}
	group.POST("/login", lc.Login)
}
