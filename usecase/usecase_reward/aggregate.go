package usecase_reward

import (
	"fmt"
	"sort"
	"strings"

	"reward_system/domain/domain_reward"
)

// Compute 结算主流程：列规范化 → 输入校验 → 逐行标注（渠道/数值/身份/排除）→
// 基础奖励 → 各项加成 → 汇总、清零、排序、组装输出列。
// 纯函数：不修改入参，相同输入产生相同输出。
func Compute(src domain_reward.Table, cfg domain_reward.RuleConfig) (domain_reward.Table, error) {
	cfg = cfg.Normalized()
	work := AlignColumns(src)

	if err := validateColumns(&work); err != nil {
		return domain_reward.Table{}, err
	}

	// 全表规范化：渠道归类、数值兜底、期数默认
	work.EnsureColumn(domain_reward.ColumnLikes, float64(0))
	work.EnsureColumn(domain_reward.ColumnComments, float64(0))
	work.EnsureColumn(domain_reward.ColumnPeriod, domain_reward.DefaultPeriod)
	for _, row := range work.Rows {
		row[domain_reward.ColumnChannel] = NormalizeChannel(row[domain_reward.ColumnChannel])
		row[domain_reward.ColumnPlays] = row.Number(domain_reward.ColumnPlays)
		row[domain_reward.ColumnLikes] = row.Number(domain_reward.ColumnLikes)
		row[domain_reward.ColumnComments] = row.Number(domain_reward.ColumnComments)
		// 期数缺失或为空白单元格时补默认（CSV/Excel 的空单元格读进来是空串）
		if strings.TrimSpace(row.Text(domain_reward.ColumnPeriod)) == "" {
			row[domain_reward.ColumnPeriod] = domain_reward.DefaultPeriod
		} else {
			row[domain_reward.ColumnPeriod] = row.Text(domain_reward.ColumnPeriod)
		}
	}

	// 身份标识与排除检测
	textColumns := presentTextColumns(&work)
	work.EnsureColumn(domain_reward.ColumnIdentity, "")
	work.EnsureColumn(domain_reward.ColumnExcludeReason, nil)
	for _, row := range work.Rows {
		ident := CoalesceRow(row, domain_reward.IdentityColumns())
		if ident == "" {
			ident = domain_reward.UnknownAccount
		}
		row[domain_reward.ColumnIdentity] = ident

		if reason, excluded := DetectExclusion(row, textColumns); excluded {
			row[domain_reward.ColumnExcludeReason] = reason
		}
	}

	// 瓜分模式需要先聚合达标播放总量，再逐行按占比计算
	var poolSum float64
	if cfg.BaseMode == domain_reward.BaseModePool {
		poolSum = PoolQualifyingSum(work.Rows, cfg.Pool.MinPlay)
	}

	work.EnsureColumn(domain_reward.ColumnBaseReward, float64(0))
	work.EnsureColumn(domain_reward.ColumnTimeBonus, float64(0))
	work.EnsureColumn(domain_reward.ColumnPlatformBonus, float64(0))
	work.EnsureColumn(domain_reward.ColumnQualityBonus, float64(0))
	work.EnsureColumn(domain_reward.ColumnTotalReward, float64(0))
	work.EnsureColumn(domain_reward.ColumnWorkKey, "")
	work.EnsureColumn(domain_reward.ColumnStatus, "")
	for _, row := range work.Rows {
		channel := row.Text(domain_reward.ColumnChannel)
		plays := row.Number(domain_reward.ColumnPlays)
		contentType := row.Text(domain_reward.ColumnContentType)

		base := BaseReward(cfg, channel, plays, poolSum)
		timeBonus := TimeBonus(cfg.TimeRules, contentType, plays)
		platformBonus := PlatformBonus(row, channel)
		qualityBonus := QualityBonus(cfg.QualityRules, row, channel)

		row[domain_reward.ColumnBaseReward] = base
		row[domain_reward.ColumnTimeBonus] = timeBonus
		row[domain_reward.ColumnPlatformBonus] = platformBonus
		row[domain_reward.ColumnQualityBonus] = qualityBonus

		// 排除的行保留各分项金额可审计，仅总奖励清零
		total := base + timeBonus + platformBonus + qualityBonus
		reason := row.Text(domain_reward.ColumnExcludeReason)
		if reason != "" {
			total = 0
			row[domain_reward.ColumnStatus] = reason
		} else {
			row[domain_reward.ColumnStatus] = domain_reward.StatusIncluded
		}
		row[domain_reward.ColumnTotalReward] = total

		row[domain_reward.ColumnWorkKey] = workKey(row)
	}

	sortRows(work.Rows)

	return domain_reward.Table{Columns: assembleColumns(&work), Rows: work.Rows}, nil
}

func validateColumns(work *domain_reward.Table) error {
	var missing []string
	for _, col := range domain_reward.RequiredBaseColumns() {
		if !work.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain_reward.ErrMissingColumns, strings.Join(missing, "/"))
	}
	for _, col := range domain_reward.IdentityColumns() {
		if work.HasColumn(col) {
			return nil
		}
	}
	return domain_reward.ErrMissingIdentity
}

// presentTextColumns 参与排除扫描的文本列：必需列 + 数据中实际存在的可选文本列
func presentTextColumns(work *domain_reward.Table) []string {
	candidates := append(domain_reward.RequiredBaseColumns(), domain_reward.OptionalTextColumns()...)
	var present []string
	for _, col := range candidates {
		if work.HasColumn(col) {
			present = append(present, col)
		}
	}
	return present
}

// workKey 作品标识：账号名称（缺则退化为账号标识）＋ 首个非空标题列
func workKey(row domain_reward.Row) string {
	name := strings.TrimSpace(row.Text(domain_reward.ColumnAccountName))
	if name == "" {
		name = row.Text(domain_reward.ColumnIdentity)
	}
	title := CoalesceRow(row, domain_reward.TitleColumns())
	if title == "" {
		title = domain_reward.UntitledWork
	}
	return name + "｜" + title
}

// sortRows 稳定排序：期数升序、账号标识升序、作品标识升序、总奖励降序
func sortRows(rows []domain_reward.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if pa, pb := a.Text(domain_reward.ColumnPeriod), b.Text(domain_reward.ColumnPeriod); pa != pb {
			return pa < pb
		}
		if ia, ib := a.Text(domain_reward.ColumnIdentity), b.Text(domain_reward.ColumnIdentity); ia != ib {
			return ia < ib
		}
		if wa, wb := a.Text(domain_reward.ColumnWorkKey), b.Text(domain_reward.ColumnWorkKey); wa != wb {
			return wa < wb
		}
		return a.Number(domain_reward.ColumnTotalReward) > b.Number(domain_reward.ColumnTotalReward)
	})
}

// assembleColumns 固定展示列在前（仅保留实际存在的），其余列按原始顺序追加
func assembleColumns(work *domain_reward.Table) []string {
	columns := make([]string, 0, len(work.Columns))
	seen := make(map[string]bool)
	for _, col := range domain_reward.DisplayColumns() {
		if work.HasColumn(col) {
			columns = append(columns, col)
			seen[col] = true
		}
	}
	for _, col := range work.Columns {
		if !seen[col] {
			columns = append(columns, col)
		}
	}
	return columns
}
