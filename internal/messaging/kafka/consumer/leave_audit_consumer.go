package consumer

import (
	"context"
	"encoding/json"

	"go-leave/internal/bootstrap"
	"go-leave/internal/events"
	"go-leave/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLeaveLifecycle writes every leave lifecycle event to the audit log.
// Undecodable messages are committed and skipped so they cannot block the
// partition.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LeaveEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || !events.IsLeaveEvent(event.EventType) {
			log.Error("decode leave lifecycle event failed",
				zap.String("event_type", event.EventType),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditCtx := contextutil.WithRequestID(ctx, event.RequestID)
		audit.Log(auditCtx, toAuditLog(event))

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
			continue
		}

		log.Debug("leave lifecycle event audited",
			zap.String("leave_id", event.LeaveID),
			zap.String("event_type", event.EventType),
		)
	}
}

func toAuditLog(e events.LeaveEvent) bootstrap.AuditLog {
	return bootstrap.AuditLog{
		Action:  e.EventType,
		Message: "leave " + e.LeaveID + " " + transitionText(e),
		Meta: map[string]any{
			"leave_id":        e.LeaveID,
			"employee_id":     e.EmployeeID,
			"organization_id": e.OrganizationID,
			"leave_type":      e.LeaveType,
			"from_status":     e.FromStatus,
			"to_status":       e.ToStatus,
			"total_days":      e.TotalDays.String(),
			"actor_id":        e.ActorID,
			"actor_role":      e.ActorRole,
			"remarks":         e.Remarks,
			"occurred_at":     e.OccurredAt,
		},
	}
}

func transitionText(e events.LeaveEvent) string {
	switch {
	case e.FromStatus == "" && e.ToStatus != "":
		return "created as " + e.ToStatus
	case e.ToStatus == "":
		return "deleted"
	default:
		return e.FromStatus + " -> " + e.ToStatus
	}
}
