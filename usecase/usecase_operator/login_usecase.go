package usecase_operator

import (
	"context"
	"time"

	"reward_system/domain/domain_operator"

	"github.com/golang-jwt/jwt/v4"
)

type loginUsecase struct {
	operatorRepo domain_operator.OperatorRepository
	timeout      time.Duration
}

func NewLoginUsecase(operatorRepo domain_operator.OperatorRepository, timeout time.Duration) domain_operator.LoginUsecase {
	return &loginUsecase{
		operatorRepo: operatorRepo,
		timeout:      timeout,
	}
}

func (uc *loginUsecase) GetOperatorByName(ctx context.Context, name string) (*domain_operator.Operator, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.operatorRepo.GetByName(ctx, name)
}

// JwtCustomClaims 访问令牌的自定义声明
type JwtCustomClaims struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	jwt.RegisteredClaims
}

func (uc *loginUsecase) CreateAccessToken(operator *domain_operator.Operator, secret string, expiryHour int) (string, error) {
	exp := time.Now().Add(time.Hour * time.Duration(expiryHour))
	claims := &JwtCustomClaims{
		Name: operator.Name,
		ID:   operator.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
