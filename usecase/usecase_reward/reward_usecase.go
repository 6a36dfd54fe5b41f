package usecase_reward

import (
	"context"
	"time"

	"reward_system/domain/domain_activity"
	"reward_system/domain/domain_reward"
)

// RewardUsecase 按活动的生效规则对上传数据集做结算
type RewardUsecase struct {
	activityRepo domain_activity.ActivityRepository
	timeout      time.Duration
}

func NewRewardUsecase(activityRepo domain_activity.ActivityRepository, timeout time.Duration) *RewardUsecase {
	return &RewardUsecase{
		activityRepo: activityRepo,
		timeout:      timeout,
	}
}

// ComputeForActivity 取活动的生效规则配置，计算结算结果与汇总指标
func (uc *RewardUsecase) ComputeForActivity(
	ctx context.Context,
	activityID string,
	table domain_reward.Table,
) (domain_reward.Table, domain_reward.Summary, *domain_activity.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	activity, err := uc.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return domain_reward.Table{}, domain_reward.Summary{}, nil, err
	}

	result, err := Compute(table, activity.ActiveRule())
	if err != nil {
		return domain_reward.Table{}, domain_reward.Summary{}, nil, err
	}
	return result, domain_reward.Summarize(result), activity, nil
}
