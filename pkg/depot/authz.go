package depot

import (
	"context"
)

type Action string

const (
	ActionOriginCreate Action = "origin:create"
	ActionOriginDelete Action = "origin:delete"
	ActionMemberAdd    Action = "origin:member:add"
	ActionMemberRemove Action = "origin:member:remove"
)

// Authorizer gates every origin and membership mutation. The depot ships
// no trust model of its own; deployments insert one here.
type Authorizer interface {
	Authorize(ctx context.Context, principal Principal, action Action, resource string) error
}

type AllowAll struct{}

func (AllowAll) Authorize(ctx context.Context, principal Principal, action Action, resource string) error {
	return nil
}
