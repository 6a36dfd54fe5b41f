package domain_activity

import (
	"context"

	"reward_system/domain/domain_reward"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 活动状态
const (
	StatusDraft    = "草稿"
	StatusRunning  = "进行中"
	StatusFinished = "已结束"
)

// RuleVersion 一个规则版本：版本号 + 完整规则配置。
// 当前每个活动只使用第一个版本，保留列表结构便于后续做规则历史。
type RuleVersion struct {
	ID      string                   `bson:"id" json:"id"`
	Name    string                   `bson:"name" json:"name"`
	Version string                   `bson:"version" json:"version"`
	Config  domain_reward.RuleConfig `bson:"config" json:"config"`
}

// Activity 奖励活动：一个活动持有一套生效规则配置
type Activity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Period       string             `bson:"period" json:"period"`
	StartDate    string             `bson:"start_date" json:"start_date"` // ISO日期字符串，可为空
	EndDate      string             `bson:"end_date" json:"end_date"`
	Status       string             `bson:"status" json:"status"`
	Remark       string             `bson:"remark" json:"remark"`
	RuleVersions []RuleVersion      `bson:"rule_versions" json:"rule_versions"`
}

// ActiveRule 取生效规则配置（第一个规则版本），无规则版本时返回内置默认
func (a *Activity) ActiveRule() domain_reward.RuleConfig {
	if len(a.RuleVersions) == 0 {
		return domain_reward.DefaultRuleConfig()
	}
	return a.RuleVersions[0].Config.Normalized()
}

// DefaultRuleVersion 内置默认规则版本
func DefaultRuleVersion() RuleVersion {
	return RuleVersion{
		ID:      "rule_default",
		Name:    "默认规则",
		Version: domain_reward.RewardVersion,
		Config:  domain_reward.DefaultRuleConfig(),
	}
}

// ActivityMeta 活动基础信息（不含规则）
type ActivityMeta struct {
	Name      string `json:"name"`
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Remark    string `json:"remark"`
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	Fetch(ctx context.Context) ([]Activity, error)
	GetByID(ctx context.Context, id string) (*Activity, error)
	Update(ctx context.Context, activity *Activity) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ActivityUsecase interface {
	List(ctx context.Context) ([]Activity, error)
	GetByID(ctx context.Context, id string) (*Activity, error)
	Create(ctx context.Context, meta ActivityMeta) (*Activity, error)
	UpdateMeta(ctx context.Context, id string, meta ActivityMeta) error
	UpdateRule(ctx context.Context, id string, config domain_reward.RuleConfig) error
	Delete(ctx context.Context, id string) error
}
