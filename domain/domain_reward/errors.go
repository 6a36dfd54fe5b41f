package domain_reward

import "errors"

// 输入校验失败：直接返回调用方，不做内部重试
var (
	ErrMissingColumns  = errors.New("缺少必要字段")
	ErrMissingIdentity = errors.New("缺少账号标识（账号ID/账号名称/账号昵称 至少一列）")
)
