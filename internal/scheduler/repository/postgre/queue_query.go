package postgre

import (
	"fmt"
	"strings"

	repo "cognito-assistant/internal/scheduler/repository"
)

// buildListQuery builds the WHERE + ORDER + LIMIT clause for List.
// All non-empty filters are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.ExecutionStatus != "" {
		conditions = append(conditions, fmt.Sprintf("execution_status = $%d", idx))
		args = append(args, opt.ExecutionStatus)
		idx++
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	clause := fmt.Sprintf("WHERE %s ORDER BY created_at DESC", where)
	if opt.Limit > 0 {
		clause += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
	}
	return clause, args
}
