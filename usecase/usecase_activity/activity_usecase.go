package usecase_activity

import (
	"context"
	"time"

	"reward_system/domain/domain_activity"
	"reward_system/domain/domain_reward"
)

type activityUsecase struct {
	repo    domain_activity.ActivityRepository
	timeout time.Duration
}

func NewActivityUsecase(repo domain_activity.ActivityRepository, timeout time.Duration) domain_activity.ActivityUsecase {
	return &activityUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

// List 返回全部活动。库为空时播种一个默认活动；
// 存量活动的规则版本落后于内置版本时重置为内置默认并落库。
func (uc *activityUsecase) List(ctx context.Context) ([]domain_activity.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	activities, err := uc.repo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		seeded := defaultActivity()
		if err := uc.repo.Create(ctx, &seeded); err != nil {
			return nil, err
		}
		return []domain_activity.Activity{seeded}, nil
	}

	for i := range activities {
		if migrateRuleVersions(&activities[i]) {
			if err := uc.repo.Update(ctx, &activities[i]); err != nil {
				return nil, err
			}
		}
	}
	return activities, nil
}

func (uc *activityUsecase) GetByID(ctx context.Context, id string) (*domain_activity.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	activity, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if migrateRuleVersions(activity) {
		if err := uc.repo.Update(ctx, activity); err != nil {
			return nil, err
		}
	}
	return activity, nil
}

func (uc *activityUsecase) Create(ctx context.Context, meta domain_activity.ActivityMeta) (*domain_activity.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if meta.Name == "" {
		meta.Name = "新活动"
	}
	if meta.Status == "" {
		meta.Status = domain_activity.StatusDraft
	}
	activity := domain_activity.Activity{
		Name:         meta.Name,
		Period:       meta.Period,
		StartDate:    meta.StartDate,
		EndDate:      meta.EndDate,
		Status:       meta.Status,
		Remark:       meta.Remark,
		RuleVersions: []domain_activity.RuleVersion{domain_activity.DefaultRuleVersion()},
	}
	if err := uc.repo.Create(ctx, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (uc *activityUsecase) UpdateMeta(ctx context.Context, id string, meta domain_activity.ActivityMeta) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	activity, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	activity.Name = meta.Name
	activity.Period = meta.Period
	activity.StartDate = meta.StartDate
	activity.EndDate = meta.EndDate
	activity.Status = meta.Status
	activity.Remark = meta.Remark
	if len(activity.RuleVersions) == 0 {
		activity.RuleVersions = []domain_activity.RuleVersion{domain_activity.DefaultRuleVersion()}
	}
	return uc.repo.Update(ctx, activity)
}

// UpdateRule 替换活动的生效规则配置，并把规则版本号抬到当前内置版本
func (uc *activityUsecase) UpdateRule(ctx context.Context, id string, config domain_reward.RuleConfig) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	activity, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if len(activity.RuleVersions) == 0 {
		activity.RuleVersions = []domain_activity.RuleVersion{domain_activity.DefaultRuleVersion()}
	}
	activity.RuleVersions[0].Config = config.Normalized()
	activity.RuleVersions[0].Version = domain_reward.RewardVersion
	return uc.repo.Update(ctx, activity)
}

// Delete 删除活动；至少保留一个活动
func (uc *activityUsecase) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return domain_activity.ErrLastActivity
	}
	return uc.repo.Delete(ctx, id)
}

// migrateRuleVersions 补齐缺失的规则版本；版本号不一致时重置为内置默认规则。
// 返回是否有变更需要落库。
func migrateRuleVersions(activity *domain_activity.Activity) bool {
	if len(activity.RuleVersions) == 0 {
		activity.RuleVersions = []domain_activity.RuleVersion{domain_activity.DefaultRuleVersion()}
		return true
	}
	first := &activity.RuleVersions[0]
	if first.Version != domain_reward.RewardVersion {
		first.Config = domain_reward.DefaultRuleConfig()
		first.Version = domain_reward.RewardVersion
		return true
	}
	return false
}

func defaultActivity() domain_activity.Activity {
	return domain_activity.Activity{
		Name:         "默认活动",
		Period:       "第一期",
		Status:       domain_activity.StatusRunning,
		Remark:       "系统自动创建的默认活动",
		RuleVersions: []domain_activity.RuleVersion{domain_activity.DefaultRuleVersion()},
	}
}
