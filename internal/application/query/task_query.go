package query

import "task-service/internal/application/common"

type ListTasksQueryResult struct {
	Result []*common.TaskResult
}
