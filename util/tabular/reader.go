package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"reward_system/domain/domain_reward"

	"github.com/h2non/filetype"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var (
	ErrEmptyFile = errors.New("文件内容为空")
	ErrNoSheet   = errors.New("未找到工作表")
)

// Parse 把上传的 CSV/Excel 字节解析为表格数据。
// 真实类型以文件头嗅探为准（在线文档导出的文件扩展名不可信），
// CSV 按 UTF-8 读取，非法 UTF-8 时回退 GB18030。
func Parse(data []byte, filename string) (domain_reward.Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain_reward.Table{}, ErrEmptyFile
	}
	if isExcel(data, filename) {
		return parseExcel(data)
	}
	return parseCSV(data)
}

func isExcel(data []byte, filename string) bool {
	lower := strings.ToLower(filename)
	byName := strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls")
	if kind, err := filetype.Match(data); err == nil {
		switch kind.Extension {
		case "xlsx", "xls":
			return true
		case "zip":
			// xlsx 本质是 zip 容器，部分导出工具只能嗅探到 zip
			return byName
		}
	}
	return byName
}

func parseExcel(data []byte) (domain_reward.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return domain_reward.Table{}, fmt.Errorf("Excel文件读取失败: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain_reward.Table{}, ErrNoSheet
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return domain_reward.Table{}, fmt.Errorf("Excel工作表读取失败: %w", err)
	}
	if len(records) == 0 {
		return domain_reward.Table{}, ErrEmptyFile
	}
	return fromRecords(records)
}

func parseCSV(data []byte) (domain_reward.Table, error) {
	text := data
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), data)
		if err != nil {
			return domain_reward.Table{}, fmt.Errorf("无法识别的文本编码: %w", err)
		}
		text = decoded
	}
	text = bytes.TrimPrefix(text, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return domain_reward.Table{}, fmt.Errorf("CSV解析失败: %w", err)
	}
	if len(records) == 0 {
		return domain_reward.Table{}, ErrEmptyFile
	}
	return fromRecords(records)
}

// fromRecords 首行作为表头，其余行按表头列名装配；整行为空的记录跳过
func fromRecords(records [][]string) (domain_reward.Table, error) {
	header := records[0]
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	rows := make([]domain_reward.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if allEmpty(rec) {
			continue
		}
		row := make(domain_reward.Row, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return domain_reward.Table{Columns: columns, Rows: rows}, nil
}

func allEmpty(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
