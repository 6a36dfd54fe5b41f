package usecase_reward

import (
	"strings"

	"reward_system/domain/domain_reward"
)

// DetectExclusion 拼接行内全部文本列（转小写）做排除关键词包含检测，
// 返回首个命中关键词对应的原因文案。命中的行仍会完整计算各项加成，
// 仅在汇总时清零总奖励，保证"为什么是0元"可审计。
func DetectExclusion(row domain_reward.Row, textColumns []string) (string, bool) {
	var b strings.Builder
	for i, col := range textColumns {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(row.Text(col))
	}
	haystack := strings.ToLower(b.String())

	for _, kw := range domain_reward.ExcludeKeywords() {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return "含排除关键词:" + kw, true
		}
	}
	return "", false
}
