package access

import (
	"fmt"

	types "github.com/dealdesk/dealdesk-backend/internal/domain"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// policy is the fixed operation x role table. Entity services evaluate it
// before touching the repositories, so a denial never has side effects.
var policy = map[Operation]map[types.Role]bool{
	OpCreate: {types.RoleAdmin: true, types.RoleUser: true},
	OpRead:   {types.RoleAdmin: true, types.RoleUser: true},
	OpUpdate: {types.RoleAdmin: true, types.RoleUser: true},
	OpDelete: {types.RoleAdmin: true},
}

func Authorize(role types.Role, op Operation) error {
	if policy[op][role] {
		return nil
	}
	return fmt.Errorf("role %s may not %s", role, op)
}
