package route

import (
	"time"

	"reward_system/api/middleware"
	"reward_system/bootstrap"
	"reward_system/mongo"

	"github.com/gin-gonic/gin"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	publicRouter := gin.Group("")
	NewLoginRouter(env, timeout, db, publicRouter)

	protectedRouter := gin.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewActivityRouter(timeout, db, protectedRouter)
	NewRewardRouter(timeout, db, protectedRouter)
}
