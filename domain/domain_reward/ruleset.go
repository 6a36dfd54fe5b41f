package domain_reward

// 渠道
const (
	ChannelDouyin   = "抖音/视频号"
	ChannelRedNote  = "小红书"
	ChannelBilibili = "B站"
)

// 基础奖励计算模式
const (
	BaseModeTier = "档位"
	BaseModeCPM  = "CPM"
	BaseModePool = "瓜分"
)

// RuleAppliesToAll 优秀奖励规则"适用渠道"的不限渠道取值
const RuleAppliesToAll = "全部"

// RewardVersion 内置规则版本号，存量活动的规则版本不一致时重置为内置默认
const RewardVersion = "v20250305"

// Tier 档位：播放量阈值与各渠道对应的奖励金额
type Tier struct {
	Label     string             `bson:"label" json:"label"`         // 梯度名称，如 "10w+"
	Threshold float64            `bson:"threshold" json:"threshold"` // 播放量下限（含）
	Amounts   map[string]float64 `bson:"amounts" json:"amounts"`     // 渠道 -> 金额
}

// QualityRule 优秀奖励规则：目标字段达到阈值即加成，多条规则叠加
type QualityRule struct {
	Name           string  `bson:"name" json:"name"`
	Field          string  `bson:"field" json:"field"`         // 目标数值字段（规范列名）
	Threshold      float64 `bson:"threshold" json:"threshold"` // 达标阈值（含）
	Bonus          float64 `bson:"bonus" json:"bonus"`
	ShortVideoOnly bool    `bson:"short_video_only" json:"short_video_only"`
	Channel        string  `bson:"channel" json:"channel"` // 适用渠道，"全部" 表示不限
}

// TimeRule 限时奖励规则：播放量达标且作品类型命中关键词即加成，多条规则叠加
type TimeRule struct {
	Name     string   `bson:"name" json:"name"`
	Keywords []string `bson:"keywords" json:"keywords"` // 为空表示不限关键词
	MinPlays float64  `bson:"min_plays" json:"min_plays"`
	Bonus    float64  `bson:"bonus" json:"bonus"`
}

// PoolConfig 瓜分模式参数
type PoolConfig struct {
	Total   float64 `bson:"total" json:"total"`       // 奖金池总额（元）
	MinPlay float64 `bson:"min_play" json:"min_play"` // 参与瓜分的最低播放量门槛
}

// RuleConfig 一套完整的结算规则。同一时间只有 BaseMode 指定的模式生效，
// 其余模式的参数保留但不参与计算。
type RuleConfig struct {
	BaseMode     string             `bson:"base_mode" json:"base_mode"`
	Tiers        []Tier             `bson:"tiers" json:"tiers"`
	QualityRules []QualityRule      `bson:"quality_rules" json:"quality_rules"`
	TimeRules    []TimeRule         `bson:"time_rules" json:"time_rules"`
	CPMRates     map[string]float64 `bson:"cpm_rates" json:"cpm_rates"` // 渠道 -> 元/千次，键 "默认" 为兜底费率
	Pool         PoolConfig         `bson:"pool" json:"pool"`
}

// Normalized 补齐缺失的规则项为内置默认值。配置残缺不报错，这里统一兜底，
// 保证计算引擎拿到的配置总是完整的。
func (c RuleConfig) Normalized() RuleConfig {
	out := c
	if out.BaseMode != BaseModeTier && out.BaseMode != BaseModeCPM && out.BaseMode != BaseModePool {
		out.BaseMode = DefaultBaseMode
	}
	if len(out.Tiers) == 0 {
		out.Tiers = DefaultTiers()
	}
	if out.QualityRules == nil {
		out.QualityRules = DefaultQualityRules()
	}
	if out.TimeRules == nil {
		out.TimeRules = DefaultTimeRules()
	}
	if len(out.CPMRates) == 0 {
		out.CPMRates = DefaultCPMRates()
	}
	if out.Pool.Total == 0 && out.Pool.MinPlay == 0 {
		out.Pool = DefaultPool()
	}
	return out
}
