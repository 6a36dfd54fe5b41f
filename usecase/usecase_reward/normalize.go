package usecase_reward

import (
	"strings"

	"reward_system/domain/domain_reward"
)

// AlignColumns 按静态别名表把原始表头规范化为标准列名。
// 对去除首尾空白后的表头做精确匹配；多个原始列映射到同一规范列时，
// 以首个出现的列为准，其余列丢弃。返回深拷贝，不修改入参。
func AlignColumns(src domain_reward.Table) domain_reward.Table {
	aliases := domain_reward.ColumnAliases()

	rename := make(map[string]string, len(src.Columns))
	columns := make([]string, 0, len(src.Columns))
	seen := make(map[string]bool, len(src.Columns))
	for _, col := range src.Columns {
		key := strings.TrimSpace(col)
		target, ok := aliases[key]
		if !ok {
			target = key
		}
		if seen[target] {
			continue
		}
		seen[target] = true
		rename[col] = target
		columns = append(columns, target)
	}

	rows := make([]domain_reward.Row, len(src.Rows))
	for i, row := range src.Rows {
		out := make(domain_reward.Row, len(row))
		for col, v := range row {
			target, ok := rename[col]
			if !ok {
				continue
			}
			out[target] = v
		}
		rows[i] = out
	}
	return domain_reward.Table{Columns: columns, Rows: rows}
}

// NormalizeChannel 渠道自由文本归类到三个已知渠道之一。
// 非字符串归空串，未命中的文本去空白后原样透传。
func NormalizeChannel(raw interface{}) string {
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	text := strings.ToLower(strings.TrimSpace(s))

	for _, k := range []string{"抖音", "douyin", "视频号", "wechat video", "wx视频号"} {
		if strings.Contains(text, k) {
			return domain_reward.ChannelDouyin
		}
	}
	if strings.Contains(text, "小红书") || strings.Contains(text, "xhs") || text == "red" {
		return domain_reward.ChannelRedNote
	}
	if strings.Contains(text, "b站") || strings.Contains(text, "bilibili") || strings.Contains(text, "哔哩") {
		return domain_reward.ChannelBilibili
	}
	return strings.TrimSpace(s)
}

// BoolFromAny 宽松布尔：布尔原样、数值非零为真、文本命中真值词表为真
func BoolFromAny(v interface{}) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case float64:
		return b != 0
	case float32:
		return b != 0
	case int:
		return b != 0
	case int64:
		return b != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(b))
		switch text {
		case "1", "true", "yes", "y", "是", "有", "热搜", "热门":
			return true
		}
		return false
	default:
		return false
	}
}

// CoalesceRow 依序取各列中第一个非空文本（去首尾空白）
func CoalesceRow(row domain_reward.Row, cols []string) string {
	for _, col := range cols {
		if text := strings.TrimSpace(row.Text(col)); text != "" {
			return text
		}
	}
	return ""
}
