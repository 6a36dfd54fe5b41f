package domain_reward

// DefaultBaseMode 默认基础奖励模式
const DefaultBaseMode = BaseModeTier

// DefaultTiers 默认奖励梯度表（可在前端被用户调整）
func DefaultTiers() []Tier {
	return []Tier{
		{Label: "100w+", Threshold: 1_000_000, Amounts: map[string]float64{ChannelDouyin: 300, ChannelRedNote: 900, ChannelBilibili: 1800}},
		{Label: "50w+", Threshold: 500_000, Amounts: map[string]float64{ChannelDouyin: 150, ChannelRedNote: 450, ChannelBilibili: 900}},
		{Label: "20w+", Threshold: 200_000, Amounts: map[string]float64{ChannelDouyin: 60, ChannelRedNote: 180, ChannelBilibili: 360}},
		{Label: "10w+", Threshold: 100_000, Amounts: map[string]float64{ChannelDouyin: 30, ChannelRedNote: 90, ChannelBilibili: 180}},
		{Label: "5w+", Threshold: 50_000, Amounts: map[string]float64{ChannelDouyin: 15, ChannelRedNote: 45, ChannelBilibili: 90}},
		{Label: "3w+", Threshold: 30_000, Amounts: map[string]float64{ChannelDouyin: 10, ChannelRedNote: 30, ChannelBilibili: 60}},
		{Label: "1w+", Threshold: 10_000, Amounts: map[string]float64{ChannelDouyin: 5, ChannelRedNote: 15, ChannelBilibili: 30}},
	}
}

// DefaultQualityRules 默认优秀奖励规则
func DefaultQualityRules() []QualityRule {
	return []QualityRule{
		{Name: "短视频点赞≥10w", Field: ColumnLikes, Threshold: 100_000, Bonus: 300, ShortVideoOnly: true, Channel: RuleAppliesToAll},
		{Name: "播放≥200w", Field: ColumnPlays, Threshold: 2_000_000, Bonus: 1000, ShortVideoOnly: false, Channel: RuleAppliesToAll},
		{Name: "评论≥5000", Field: ColumnComments, Threshold: 5_000, Bonus: 200, ShortVideoOnly: false, Channel: RuleAppliesToAll},
	}
}

// DefaultTimeRules 默认限时奖励规则
func DefaultTimeRules() []TimeRule {
	return []TimeRule{
		{
			Name:     "热点/主题加50",
			Keywords: []string{"热点推荐", "新春主题", "长期主题", "2月主题"},
			MinPlays: 10_000,
			Bonus:    50,
		},
	}
}

// DefaultCPMRates 默认CPM费率（元/千次播放）
func DefaultCPMRates() map[string]float64 {
	return map[string]float64{
		ChannelDouyin:   0.30,
		ChannelRedNote:  0.90,
		ChannelBilibili: 1.80,
	}
}

// DefaultPool 默认瓜分参数
func DefaultPool() PoolConfig {
	return PoolConfig{Total: 10000.0, MinPlay: 10000.0}
}

// DefaultRuleConfig 完整的内置默认规则
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		BaseMode:     DefaultBaseMode,
		Tiers:        DefaultTiers(),
		QualityRules: DefaultQualityRules(),
		TimeRules:    DefaultTimeRules(),
		CPMRates:     DefaultCPMRates(),
		Pool:         DefaultPool(),
	}
}
