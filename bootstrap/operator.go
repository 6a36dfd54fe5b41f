package bootstrap

import (
	"context"
	"log"
	"time"

	"reward_system/domain"
	"reward_system/domain/domain_operator"
	"reward_system/mongo"
	"reward_system/repository/repository_operator"

	"golang.org/x/crypto/bcrypt"
)

// SeedOperator 启动时从配置播种操作员账号（单人内部系统，重复启动覆盖写入）
func SeedOperator(env *Env, db mongo.Database) {
	if env.OperatorName == "" || env.OperatorPassword == "" {
		log.Fatal("缺少 OPERATOR_NAME / OPERATOR_PASSWORD 配置")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(env.OperatorPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("操作员密码加密失败: ", err)
	}

	repo := repository_operator.NewOperatorRepository(db, domain.CollectionOperator)
	err = repo.Upsert(ctx, &domain_operator.Operator{
		Name:     env.OperatorName,
		Password: string(hashed),
	})
	if err != nil {
		log.Fatal("操作员账号播种失败: ", err)
	}
}
