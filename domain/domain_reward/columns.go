package domain_reward

// 规范列名
const (
	ColumnChannel     = "渠道"
	ColumnPlays       = "播放量"
	ColumnContentType = "作品类型"
	ColumnLikes       = "点赞"
	ColumnComments    = "评论数"
	ColumnPeriod      = "期数"

	ColumnAccountID       = "账号ID"
	ColumnAccountName     = "账号名称"
	ColumnAccountNickname = "账号昵称"

	ColumnIdentity      = "账号标识"
	ColumnWorkKey       = "作品标识"
	ColumnBaseReward    = "基础奖励"
	ColumnTimeBonus     = "限时奖励"
	ColumnPlatformBonus = "平台加成"
	ColumnQualityBonus  = "优质加成"
	ColumnTotalReward   = "总奖励"
	ColumnStatus        = "状态"
	ColumnExcludeReason = "排除原因"

	ColumnBilibiliTopSearch = "B站热搜"
	ColumnBilibiliHot       = "B站热门"
)

// 兜底标识
const (
	UnknownAccount = "未知账号"
	UntitledWork   = "未命名作品"
	DefaultPeriod  = "默认"
	StatusIncluded = "计入"
)

// RequiredBaseColumns 基础必需字段（渠道、播放量、作品类型）
func RequiredBaseColumns() []string {
	return []string{ColumnChannel, ColumnPlays, ColumnContentType}
}

// IdentityColumns 身份字段，至少需要有一个（按账号标识做分组）
func IdentityColumns() []string {
	return []string{ColumnAccountID, ColumnAccountName, ColumnAccountNickname}
}

// OptionalTextColumns 参与排除关键词扫描的可选文本列
func OptionalTextColumns() []string {
	return []string{"作品标题", "标题", "内容", "备注", "视频标题", "视频链接"}
}

// TitleColumns 作品标题取值优先级
func TitleColumns() []string {
	return []string{"视频标题", "作品标题", "标题"}
}

// ColumnAliases 原始表头到规范列名的静态映射（对去除首尾空白后的表头做精确匹配）
func ColumnAliases() map[string]string {
	return map[string]string{
		"平台":     ColumnChannel,
		"平台渠道":   ColumnChannel,
		"channel": ColumnChannel,
		"播放数":    ColumnPlays,
		"播放":     ColumnPlays,
		"阅读数":    ColumnPlays,
		"阅读量":    ColumnPlays,
		"播放量(次)": ColumnPlays,
		"浏览量":    ColumnPlays,
		"点赞数":    ColumnLikes,
		"点赞量":    ColumnLikes,
		"喜欢":     ColumnLikes,
		"love":    ColumnLikes,
		"comments": ColumnComments,
		"评论":     ColumnComments,
		"评论量":    ColumnComments,
		"视频类型":   ColumnContentType,
		"类型":     ColumnContentType,
		"账号":     ColumnAccountName,
		"作者":     ColumnAccountName,
		"作者昵称":   ColumnAccountName,
		"达人昵称":   ColumnAccountName,
		"博号昵称":   ColumnAccountName,
		"昵称":     ColumnAccountNickname,
		"达人ID":   ColumnAccountID,
		"作者ID":   ColumnAccountID,
		"UID":    ColumnAccountID,
		"uid":    ColumnAccountID,
		"期次":     ColumnPeriod,
		"批次":     ColumnPeriod,
		"轮次":     ColumnPeriod,
		"期别":     ColumnPeriod,
		"热搜":     ColumnBilibiliTopSearch,
		"热门":     ColumnBilibiliHot,
		"是否B站热搜": ColumnBilibiliTopSearch,
		"是否热搜":   ColumnBilibiliTopSearch,
		"是否B站热门": ColumnBilibiliHot,
		"是否热门":   ColumnBilibiliHot,
	}
}

// ExcludeKeywords 排除关键词：命中任意一个的作品总奖励清零（大小写不敏感）
func ExcludeKeywords() []string {
	return []string{"bug", "建议", "拉踩"}
}

// DisplayColumns 结算结果固定展示列顺序，未识别的原始列追加在其后
func DisplayColumns() []string {
	return []string{
		ColumnPeriod,
		ColumnChannel,
		ColumnIdentity,
		ColumnAccountID,
		ColumnAccountName,
		ColumnAccountNickname,
		ColumnWorkKey,
		ColumnContentType,
		ColumnPlays,
		ColumnLikes,
		ColumnComments,
		ColumnBaseReward,
		ColumnTimeBonus,
		ColumnPlatformBonus,
		ColumnQualityBonus,
		ColumnTotalReward,
		ColumnStatus,
	}
}
