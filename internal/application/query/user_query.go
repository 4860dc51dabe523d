package query

import "task-service/internal/application/common"

type GetUserQueryResult struct {
	Result *common.UserResult
}
