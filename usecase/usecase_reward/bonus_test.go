package usecase_reward

import (
	"testing"

	"reward_system/domain/domain_reward"

	"github.com/stretchr/testify/assert"
)

func TestIsShortVideo(t *testing.T) {
	assert.True(t, IsShortVideo("热点推荐 短视频", ""))
	assert.True(t, IsShortVideo("长视频", domain_reward.ChannelDouyin))
	assert.True(t, IsShortVideo("", domain_reward.ChannelRedNote))
	assert.False(t, IsShortVideo("长视频", domain_reward.ChannelBilibili))
}

func TestQualityBonus(t *testing.T) {
	rules := domain_reward.DefaultQualityRules()

	tests := []struct {
		name     string
		row      domain_reward.Row
		channel  string
		expected float64
	}{
		{
			name: "短视频点赞达标",
			row: domain_reward.Row{
				domain_reward.ColumnContentType: "短视频",
				domain_reward.ColumnLikes:       float64(100_000),
				domain_reward.ColumnPlays:       float64(50_000),
			},
			channel:  domain_reward.ChannelDouyin,
			expected: 300,
		},
		{
			name: "长视频不吃短视频专属规则",
			row: domain_reward.Row{
				domain_reward.ColumnContentType: "长视频",
				domain_reward.ColumnLikes:       float64(100_000),
			},
			channel:  domain_reward.ChannelBilibili,
			expected: 0,
		},
		{
			name: "多规则叠加",
			row: domain_reward.Row{
				domain_reward.ColumnContentType: "短视频",
				domain_reward.ColumnLikes:       float64(150_000),
				domain_reward.ColumnPlays:       float64(2_000_000),
				domain_reward.ColumnComments:    float64(6_000),
			},
			channel:  domain_reward.ChannelDouyin,
			expected: 300 + 1000 + 200,
		},
		{
			name:     "全部未达标",
			row:      domain_reward.Row{domain_reward.ColumnContentType: "短视频"},
			channel:  domain_reward.ChannelDouyin,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QualityBonus(rules, tt.row, tt.channel))
		})
	}
}

func TestQualityBonusChannelFilter(t *testing.T) {
	rules := []domain_reward.QualityRule{
		{Name: "B站专属", Field: domain_reward.ColumnPlays, Threshold: 10_000, Bonus: 88, Channel: domain_reward.ChannelBilibili},
	}
	row := domain_reward.Row{domain_reward.ColumnPlays: float64(20_000)}

	assert.Equal(t, float64(88), QualityBonus(rules, row, domain_reward.ChannelBilibili))
	assert.Equal(t, float64(0), QualityBonus(rules, row, domain_reward.ChannelDouyin))
}

func TestTimeBonus(t *testing.T) {
	rules := domain_reward.DefaultTimeRules()

	assert.Equal(t, float64(50), TimeBonus(rules, "热点推荐 短视频", 15_000))
	// 播放量门槛
	assert.Equal(t, float64(0), TimeBonus(rules, "热点推荐 短视频", 9_999))
	// 关键词未命中
	assert.Equal(t, float64(0), TimeBonus(rules, "普通短视频", 15_000))
}

func TestPlatformBonus(t *testing.T) {
	tests := []struct {
		name     string
		row      domain_reward.Row
		channel  string
		expected float64
	}{
		{
			name:     "非B站渠道不加成",
			row:      domain_reward.Row{domain_reward.ColumnContentType: "热搜 热门"},
			channel:  domain_reward.ChannelDouyin,
			expected: 0,
		},
		{
			name:     "文案含热搜",
			row:      domain_reward.Row{domain_reward.ColumnContentType: "热搜视频"},
			channel:  domain_reward.ChannelBilibili,
			expected: 100,
		},
		{
			name:     "标记列热门",
			row:      domain_reward.Row{domain_reward.ColumnBilibiliHot: "是"},
			channel:  domain_reward.ChannelBilibili,
			expected: 200,
		},
		{
			name: "热搜热门同时命中取最大不叠加",
			row: domain_reward.Row{
				domain_reward.ColumnContentType:       "热搜 热门",
				domain_reward.ColumnBilibiliTopSearch: true,
				domain_reward.ColumnBilibiliHot:       true,
			},
			channel:  domain_reward.ChannelBilibili,
			expected: 200,
		},
		{
			name:     "无信号",
			row:      domain_reward.Row{domain_reward.ColumnContentType: "普通视频"},
			channel:  domain_reward.ChannelBilibili,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlatformBonus(tt.row, tt.channel))
		})
	}
}
