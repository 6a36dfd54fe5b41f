package domain_reward

import (
	"strconv"
	"strings"
)

// Row 一行作品数据，键为规范化后的列名，值为字符串/数值/布尔
type Row map[string]interface{}

// Table 有序表格数据：列顺序决定输出顺序，行顺序在重排序前保持上传顺序
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// HasColumn 判断列是否存在
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumn 确保列存在，缺失时追加到列尾并为所有行填入默认值
func (t *Table) EnsureColumn(name string, defaultValue interface{}) {
	if t.HasColumn(name) {
		return
	}
	t.Columns = append(t.Columns, name)
	for _, row := range t.Rows {
		row[name] = defaultValue
	}
}

// Number 读取数值字段。缺失、非数值、无法解析的值一律按 0 处理，
// 这是全表统一的数值兜底策略：单元格脏数据不会中断计算。
// 注意：该策略意味着阈值为 0 的规则对缺失字段也会命中。
func (r Row) Number(col string) float64 {
	v, ok := r[col]
	if !ok {
		return 0
	}
	return ToNumber(v)
}

// Text 读取文本字段，缺失时返回空串
func (r Row) Text(col string) string {
	v, ok := r[col]
	if !ok {
		return ""
	}
	return ToText(v)
}

// ToNumber 宽松数值转换：解析失败按 0 处理
func ToNumber(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ToText 宽松文本转换
func ToText(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// Summary 结算汇总指标
type Summary struct {
	TotalReward float64 `json:"total_reward"` // 总发放金额（元）
	CountedRows int     `json:"counted_rows"` // 计入作品数（总奖励>0）
	ZeroRows    int     `json:"zero_rows"`    // 未计入/0元
}

// Summarize 汇总结算结果
func Summarize(result Table) Summary {
	var s Summary
	for _, row := range result.Rows {
		total := row.Number(ColumnTotalReward)
		s.TotalReward += total
		if total > 0 {
			s.CountedRows++
		} else {
			s.ZeroRows++
		}
	}
	return s
}
