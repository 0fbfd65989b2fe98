package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/domain/repository"
	"github.com/tugaskita/tugaskita/pkg/helpers"
)

// ActivityEvent is the wire form of an activity entry published to RabbitMQ
// for downstream consumers (the indexing worker).
type ActivityEvent struct {
	Action     string         `json:"action"`
	ActorEmail string         `json:"actor_email"`
	Detail     map[string]any `json:"detail"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ActivityRecorder appends entries to the activity log. Writes are
// best-effort: a failure never fails the triggering operation, it is
// surfaced on the logger instead. Publisher is optional; when present each
// appended entry is also fanned out as a JSON event.
type ActivityRecorder struct {
	Repo   repository.ActivityRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewActivityRecorder(repo repository.ActivityRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *ActivityRecorder {
	return &ActivityRecorder{Repo: repo, Pub: pub, Logger: logger}
}

// Record appends one entry with a server-assigned timestamp. actorEmail is
// empty for actions taken before the caller was identified.
func (r *ActivityRecorder) Record(ctx context.Context, action, actorEmail string, detail map[string]any) {
	if r == nil || r.Repo == nil {
		return
	}
	entry := &entity.ActivityEntry{
		Action:     action,
		ActorEmail: actorEmail,
		Detail:     detail,
	}
	if err := r.Repo.Append(ctx, entry); err != nil {
		if r.Logger != nil {
			r.Logger.WithError(err).WithField("action", action).Warn("activity append failed")
		}
		return
	}
	if r.Pub != nil {
		ev := ActivityEvent{
			Action:     entry.Action,
			ActorEmail: entry.ActorEmail,
			Detail:     entry.Detail,
			CreatedAt:  entry.CreatedAt,
		}
		if err := r.Pub.PublishJSON(ctx, ev); err != nil && r.Logger != nil {
			r.Logger.WithError(err).WithField("action", action).Warn("activity publish failed")
		}
	}
}
