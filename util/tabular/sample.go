package tabular

import (
	_ "embed"

	"reward_system/domain/domain_reward"
)

//go:embed sample_data.csv
var sampleCSV []byte

// SampleTable 内置示例数据，供无上传文件时体验计算流程
func SampleTable() (domain_reward.Table, error) {
	return Parse(sampleCSV, "sample_data.csv")
}
