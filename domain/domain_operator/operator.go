package domain_operator

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operator 内部操作员账号（单人使用，启动时从配置播种）
type Operator struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Password string             `bson:"password" json:"-"` // bcrypt哈希
}

type LoginRequest struct {
	Name     string `form:"name" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type OperatorRepository interface {
	GetByName(ctx context.Context, name string) (*Operator, error)
	Upsert(ctx context.Context, operator *Operator) error
}

type LoginUsecase interface {
	GetOperatorByName(ctx context.Context, name string) (*Operator, error)
	CreateAccessToken(operator *Operator, secret string, expiryHour int) (string, error)
}
