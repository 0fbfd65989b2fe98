package application

import (
	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/domain/repository"
)

// The access-control model in its entirety: three pure decisions, no side
// effects, no storage access. Every task-touching operation routes through
// exactly one of them before acting.

// CanCreateTask permits task creation for the "user" role only. Admins
// cannot create tasks; this restriction is deliberate, not an oversight to
// relax silently.
func CanCreateTask(caller *entity.User) bool {
	return caller.Role == entity.RoleUser
}

// CanAccessTask permits mutation or deletion of a task by its owner or by
// any admin.
func CanAccessTask(caller *entity.User, task *entity.Task) bool {
	return caller.Role == entity.RoleAdmin || task.OwnerEmail == caller.Email
}

// ScopeListing returns the listing filter for the caller: admins see the
// unfiltered set, everyone else only their own tasks.
func ScopeListing(caller *entity.User) repository.ListScope {
	if caller.Role == entity.RoleAdmin {
		return repository.ListScope{All: true}
	}
	return repository.ListScope{OwnerEmail: caller.Email}
}
