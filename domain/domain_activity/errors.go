package domain_activity

import "errors"

var (
	ErrNotFound = errors.New("活动不存在")
	// ErrLastActivity 至少保留一个活动，避免前端无活动可选
	ErrLastActivity = errors.New("至少保留一个活动，无法删除最后一个活动")
)
