package tabular

import (
	"strings"

	"reward_system/domain/domain_reward"

	"github.com/mozillazg/go-pinyin"
	"github.com/xuri/excelize/v2"
)

// SheetName 导出工作表名
const SheetName = "结算结果"

// BuildWorkbook 把结算结果序列化为单表 xlsx 字节
func BuildWorkbook(result domain_reward.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(result.Columns))
	for i, col := range result.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range result.Rows {
		cells := make([]interface{}, len(result.Columns))
		for j, col := range result.Columns {
			cells[j] = row[col]
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, start, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileSlug 下载文件名的 ASCII 兜底：汉字转拼音，其余仅保留字母数字与 -_
func FileSlug(name string) string {
	args := pinyin.NewArgs()
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	joined := strings.Join(pinyin.LazyPinyin(name, args), "")

	var b strings.Builder
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "result"
	}
	return b.String()
}
