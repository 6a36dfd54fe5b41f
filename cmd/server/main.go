package main

import (
	"log"
	"time"

	"reward_system/api/route"
	"reward_system/bootstrap"
	"reward_system/mongo"

	"github.com/gin-gonic/gin"
)

func main() {
	app := bootstrap.App()

	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	mongo.CreateIndexes(db)

	bootstrap.SeedOperator(env, db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()

	route.Setup(env, timeout, db, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
