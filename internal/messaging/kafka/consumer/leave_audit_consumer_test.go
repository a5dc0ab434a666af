package consumer_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"go-leave/internal/bootstrap"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
	rids    []string
}

func (a *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	a.rids = append(a.rids, contextutil.GetRequestID(ctx))
}

func TestConsumeLeaveLifecycle(t *testing.T) {
	reviewed, _ := json.Marshal(events.LeaveEvent{
		EventType:  events.LeaveReviewed,
		RequestID:  "rid-7",
		LeaveID:    "leave-1",
		FromStatus: "PENDING_HR",
		ToStatus:   "APPROVED",
		TotalDays:  decimal.NewFromInt(3),
		OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	ctx, cancel := context.WithCancel(context.Background())
	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte("not json")},
			{Offset: 2, Value: reviewed},
			{Offset: 3, Value: []byte(`{"event_type":"payroll_done"}`)},
		},
	}
	audit := &recordingAudit{}

	consumer.ConsumeLeaveLifecycle(ctx, reader, audit, zap.NewNop())

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
	assert.Len(t, audit.entries, 1)
	assert.Equal(t, events.LeaveReviewed, audit.entries[0].Action)
	assert.Equal(t, "leave leave-1 PENDING_HR -> APPROVED", audit.entries[0].Message)
	assert.Equal(t, "3", audit.entries[0].Meta["total_days"])
	assert.Equal(t, []string{"rid-7"}, audit.rids)
}
