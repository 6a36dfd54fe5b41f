package domain

const (
	CollectionActivity = "reward_activities"
)
const (
	CollectionOperator = "system_auth_operators"
)
