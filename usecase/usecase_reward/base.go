package usecase_reward

import (
	"sort"

	"reward_system/domain/domain_reward"
)

// DefaultRateKey CPM费率表的兜底键：渠道未配置费率时使用
const DefaultRateKey = "默认"

// TierBase 档位模式：梯度表按阈值降序评估，取第一个"播放量 ≥ 阈值"的档位
// 对应渠道的金额（含边界）。渠道为空、渠道未配置金额、或未达任何档位时为 0。
func TierBase(tiers []domain_reward.Tier, channel string, plays float64) float64 {
	if channel == "" {
		return 0
	}
	sorted := make([]domain_reward.Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold > sorted[j].Threshold
	})
	for _, tier := range sorted {
		if plays >= tier.Threshold {
			return tier.Amounts[channel]
		}
	}
	return 0
}

// CPMBase CPM模式：播放量/1000 × 渠道费率，渠道未配置时回退到"默认"费率
func CPMBase(rates map[string]float64, channel string, plays float64) float64 {
	rate, ok := rates[channel]
	if !ok {
		rate = rates[DefaultRateKey]
	}
	return plays / 1000.0 * rate
}

// PoolQualifyingSum 瓜分模式第一阶段：统计达到播放门槛的行的播放量总和。
// 该聚合值随后显式传入逐行计算，避免隐式共享状态。
func PoolQualifyingSum(rows []domain_reward.Row, minPlay float64) float64 {
	var sum float64
	for _, row := range rows {
		plays := row.Number(domain_reward.ColumnPlays)
		if plays >= minPlay {
			sum += plays
		}
	}
	return sum
}

// PoolBase 瓜分模式第二阶段：按播放量占达标总量的比例瓜分奖金池。
// 达标总量为 0 或本行未达门槛时为 0；达标行的瓜分结果合计约等于奖金池总额。
func PoolBase(pool domain_reward.PoolConfig, plays, qualifyingSum float64) float64 {
	if qualifyingSum == 0 {
		return 0
	}
	if plays < pool.MinPlay {
		return 0
	}
	return pool.Total * plays / qualifyingSum
}

// BaseReward 按配置模式分发基础奖励计算。poolSum 仅瓜分模式使用，
// 必须是 PoolQualifyingSum 的预计算结果。
func BaseReward(cfg domain_reward.RuleConfig, channel string, plays, poolSum float64) float64 {
	switch cfg.BaseMode {
	case domain_reward.BaseModeCPM:
		return CPMBase(cfg.CPMRates, channel, plays)
	case domain_reward.BaseModePool:
		return PoolBase(cfg.Pool, plays, poolSum)
	default:
		return TierBase(cfg.Tiers, channel, plays)
	}
}
