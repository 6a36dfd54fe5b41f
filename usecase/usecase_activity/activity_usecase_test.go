package usecase_activity

import (
	"context"
	"testing"
	"time"

	"reward_system/domain/domain_activity"
	"reward_system/domain/domain_reward"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版活动仓储，记录更新次数以验证迁移落库行为
type fakeActivityRepo struct {
	activities []domain_activity.Activity
	updates    int
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *domain_activity.Activity) error {
	if activity.ID.IsZero() {
		activity.ID = primitive.NewObjectID()
	}
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *fakeActivityRepo) Fetch(_ context.Context) ([]domain_activity.Activity, error) {
	out := make([]domain_activity.Activity, len(r.activities))
	copy(out, r.activities)
	return out, nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, id string) (*domain_activity.Activity, error) {
	for i := range r.activities {
		if r.activities[i].ID.Hex() == id {
			a := r.activities[i]
			return &a, nil
		}
	}
	return nil, domain_activity.ErrNotFound
}

func (r *fakeActivityRepo) Update(_ context.Context, activity *domain_activity.Activity) error {
	r.updates++
	for i := range r.activities {
		if r.activities[i].ID == activity.ID {
			r.activities[i] = *activity
			return nil
		}
	}
	return domain_activity.ErrNotFound
}

func (r *fakeActivityRepo) Delete(_ context.Context, id string) error {
	for i := range r.activities {
		if r.activities[i].ID.Hex() == id {
			r.activities = append(r.activities[:i], r.activities[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeActivityRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.activities)), nil
}

const testTimeout = 2 * time.Second

func TestListSeedsDefaultActivity(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUsecase(repo, testTimeout)

	activities, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)

	seeded := activities[0]
	assert.Equal(t, "默认活动", seeded.Name)
	assert.Equal(t, domain_activity.StatusRunning, seeded.Status)
	require.Len(t, seeded.RuleVersions, 1)
	assert.Equal(t, domain_reward.RewardVersion, seeded.RuleVersions[0].Version)
	assert.False(t, seeded.ID.IsZero())

	// 播种只发生一次
	again, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestListMigratesStaleRuleVersion(t *testing.T) {
	stale := domain_activity.Activity{
		ID:   primitive.NewObjectID(),
		Name: "老活动",
		RuleVersions: []domain_activity.RuleVersion{
			{ID: "rule_default", Version: "v20240101", Config: domain_reward.RuleConfig{BaseMode: "CPM"}},
		},
	}
	repo := &fakeActivityRepo{activities: []domain_activity.Activity{stale}}
	uc := NewActivityUsecase(repo, testTimeout)

	activities, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)

	// 版本落后时重置为内置默认并落库
	assert.Equal(t, domain_reward.RewardVersion, activities[0].RuleVersions[0].Version)
	assert.Equal(t, domain_reward.BaseModeTier, activities[0].RuleVersions[0].Config.BaseMode)
	assert.Equal(t, 1, repo.updates)

	// 版本一致后不再重复落库
	_, err = uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates)
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUsecase(repo, testTimeout)

	activity, err := uc.Create(context.Background(), domain_activity.ActivityMeta{})
	require.NoError(t, err)

	assert.Equal(t, "新活动", activity.Name)
	assert.Equal(t, domain_activity.StatusDraft, activity.Status)
	require.Len(t, activity.RuleVersions, 1)
	assert.Equal(t, "rule_default", activity.RuleVersions[0].ID)
}

func TestUpdateRule(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUsecase(repo, testTimeout)

	activity, err := uc.Create(context.Background(), domain_activity.ActivityMeta{Name: "活动A"})
	require.NoError(t, err)

	err = uc.UpdateRule(context.Background(), activity.ID.Hex(), domain_reward.RuleConfig{BaseMode: domain_reward.BaseModePool})
	require.NoError(t, err)

	stored, err := uc.GetByID(context.Background(), activity.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain_reward.BaseModePool, stored.RuleVersions[0].Config.BaseMode)
	// 残缺配置已被补齐
	assert.NotEmpty(t, stored.RuleVersions[0].Config.Tiers)
	assert.Equal(t, domain_reward.RewardVersion, stored.RuleVersions[0].Version)
}

func TestDeleteRefusesLastActivity(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUsecase(repo, testTimeout)

	a, err := uc.Create(context.Background(), domain_activity.ActivityMeta{Name: "活动A"})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), a.ID.Hex())
	assert.ErrorIs(t, err, domain_activity.ErrLastActivity)

	b, err := uc.Create(context.Background(), domain_activity.ActivityMeta{Name: "活动B"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), a.ID.Hex()))

	remaining, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, b.ID, remaining[0].ID)
}

func TestUpdateMetaReplacesFields(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUsecase(repo, testTimeout)

	a, err := uc.Create(context.Background(), domain_activity.ActivityMeta{Name: "活动A", Remark: "旧备注"})
	require.NoError(t, err)

	err = uc.UpdateMeta(context.Background(), a.ID.Hex(), domain_activity.ActivityMeta{
		Name:   "活动A改",
		Period: "第二期",
		Status: domain_activity.StatusFinished,
	})
	require.NoError(t, err)

	stored, err := uc.GetByID(context.Background(), a.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "活动A改", stored.Name)
	assert.Equal(t, "第二期", stored.Period)
	assert.Equal(t, domain_activity.StatusFinished, stored.Status)
	// 整体替换语义：未提供的字段清空
	assert.Equal(t, "", stored.Remark)
}
