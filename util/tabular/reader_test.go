package tabular

import (
	"testing"

	"reward_system/domain/domain_reward"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

func TestParseCSV(t *testing.T) {
	data := []byte("渠道,播放量,作品类型,账号名称\n抖音,150000,短视频,小明\n小红书,23000,图文,小红\n")

	table, err := Parse(data, "data.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"渠道", "播放量", "作品类型", "账号名称"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "抖音", table.Rows[0]["渠道"])
	assert.Equal(t, "150000", table.Rows[0]["播放量"])
}

func TestParseCSVWithBOM(t *testing.T) {
	data := append([]byte("\xef\xbb\xbf"), []byte("渠道,播放量\n抖音,100\n")...)

	table, err := Parse(data, "data.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"渠道", "播放量"}, table.Columns)
}

func TestParseCSVGB18030Fallback(t *testing.T) {
	utf8Data := []byte("渠道,播放量,作品类型\n哔哩哔哩,88000,长视频\n")
	gbkData, _, err := transform.Bytes(simplifiedchinese.GB18030.NewEncoder(), utf8Data)
	require.NoError(t, err)

	table, err := Parse(gbkData, "导出.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "哔哩哔哩", table.Rows[0]["渠道"])
}

func TestParseCSVRaggedRows(t *testing.T) {
	// 短行补空串，全空行跳过
	data := []byte("渠道,播放量,备注\n抖音,100\n,,\n小红书,200,好\n")

	table, err := Parse(data, "data.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "", table.Rows[0]["备注"])
	assert.Equal(t, "好", table.Rows[1]["备注"])
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse([]byte("   \n  "), "data.csv")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = Parse(nil, "data.csv")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestWorkbookRoundTrip(t *testing.T) {
	src := domain_reward.Table{
		Columns: []string{"渠道", "播放量", "总奖励"},
		Rows: []domain_reward.Row{
			{"渠道": "抖音/视频号", "播放量": float64(150000), "总奖励": float64(30)},
			{"渠道": "B站", "播放量": float64(88000), "总奖励": float64(90)},
		},
	}

	data, err := BuildWorkbook(src)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	table, err := Parse(data, "导出数据.xlsx")
	require.NoError(t, err)

	assert.Equal(t, src.Columns, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "抖音/视频号", table.Rows[0]["渠道"])
	assert.Equal(t, "150000", table.Rows[0]["播放量"])
}

func TestFileSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "默认活动", expected: "morenhuodong"},
		{input: "活动2024-Q1", expected: "huodong2024-Q1"},
		{input: "result_v2", expected: "result_v2"},
		{input: "！？。", expected: "result"},
		{input: "", expected: "result"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FileSlug(tt.input), tt.input)
	}
}

func TestSampleTable(t *testing.T) {
	table, err := SampleTable()
	require.NoError(t, err)
	assert.NotEmpty(t, table.Rows)
	for _, col := range domain_reward.RequiredBaseColumns() {
		assert.True(t, table.HasColumn(col), col)
	}
}
