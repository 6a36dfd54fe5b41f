package usecase_reward

import (
	"strings"

	"reward_system/domain/domain_reward"
)

// IsShortVideo 短视频判定：作品类型含"短视频"，或渠道本身是短内容平台
func IsShortVideo(contentType, channel string) bool {
	if strings.Contains(contentType, "短视频") {
		return true
	}
	return channel == domain_reward.ChannelDouyin || channel == domain_reward.ChannelRedNote
}

// QualityBonus 优秀奖励：逐条评估规则，目标字段达到阈值即加成，命中多条时叠加。
// 目标字段缺失或非数值按 0 参与比较（见 Row.Number 的兜底策略）。
func QualityBonus(rules []domain_reward.QualityRule, row domain_reward.Row, channel string) float64 {
	contentType := row.Text(domain_reward.ColumnContentType)
	short := IsShortVideo(contentType, channel)

	var bonus float64
	for _, rule := range rules {
		if rule.ShortVideoOnly && !short {
			continue
		}
		if rule.Channel != "" && rule.Channel != domain_reward.RuleAppliesToAll && channel != rule.Channel {
			continue
		}
		if row.Number(rule.Field) >= rule.Threshold {
			bonus += rule.Bonus
		}
	}
	return bonus
}

// TimeBonus 限时奖励：播放量达到下限且作品类型命中任一关键词（关键词为空不限），
// 命中多条规则时叠加。
func TimeBonus(rules []domain_reward.TimeRule, contentType string, plays float64) float64 {
	var bonus float64
	for _, rule := range rules {
		if plays < rule.MinPlays {
			continue
		}
		if len(rule.Keywords) > 0 && !containsAny(contentType, rule.Keywords) {
			continue
		}
		bonus += rule.Bonus
	}
	return bonus
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// PlatformBonus B站专属加成：热搜+100、热门+200，信号可能同时来自
// 作品类型文案与布尔标记列，取各候选的最大值避免同一信号重复计奖。
func PlatformBonus(row domain_reward.Row, channel string) float64 {
	if channel != domain_reward.ChannelBilibili {
		return 0
	}
	text := row.Text(domain_reward.ColumnContentType)
	topFlag := BoolFromAny(row[domain_reward.ColumnBilibiliTopSearch])
	hotFlag := BoolFromAny(row[domain_reward.ColumnBilibiliHot])

	var best float64
	if strings.Contains(text, "热搜") {
		best = max(best, 100)
	}
	if strings.Contains(text, "热门") {
		best = max(best, 200)
	}
	if topFlag {
		best = max(best, 100)
	}
	if hotFlag {
		best = max(best, 200)
	}
	return best
}
