package repository_operator

import (
	"context"

	"reward_system/domain"
	"reward_system/domain/domain_operator"
	"reward_system/mongo"
	"reward_system/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type operatorRepository struct {
	base domain.BaseRepository[domain_operator.Operator]
}

func NewOperatorRepository(db mongo.Database, collection string) domain_operator.OperatorRepository {
	return &operatorRepository{
		base: repository.NewBaseMongoRepository[domain_operator.Operator](db, collection),
	}
}

func (r *operatorRepository) GetByName(ctx context.Context, name string) (*domain_operator.Operator, error) {
	return r.base.GetOneByFilter(ctx, bson.M{"name": name})
}

// Upsert 按用户名覆盖写入操作员账号（启动播种用）
func (r *operatorRepository) Upsert(ctx context.Context, operator *domain_operator.Operator) error {
	existing, err := r.base.GetOneByFilter(ctx, bson.M{"name": operator.Name})
	if err != nil {
		return err
	}
	if existing != nil {
		operator.ID = existing.ID
	} else if operator.ID.IsZero() {
		operator.ID = primitive.NewObjectID()
	}
	return r.base.Update(ctx, operator)
}
