//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"peopledir/internal/audit"
	"peopledir/internal/platform/config"
	"peopledir/internal/platform/kafka"
	id "peopledir/pkg/domain"
	"peopledir/pkg/testutil/containers"
)

func TestKafkaSinkPublishesEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	redpanda := containers.GetManager().GetRedpanda(t)

	const topic = "peopledir.audit.test"
	producer, err := kafka.NewClient(ctx, config.Kafka{
		Brokers:    []string{redpanda.Broker},
		AuditTopic: topic,
	})
	require.NoError(t, err)
	defer producer.Close()

	sink := audit.NewKafkaSink(producer, topic)

	event := audit.Event{
		ID:        uuid.New(),
		Action:    audit.ActionPersonCreated,
		PersonID:  id.NewPersonID(),
		RequestID: "req-42",
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, sink.Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(redpanda.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, event.ID.String(), string(records[0].Key))

	var got audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, event.ID, got.ID)
	require.Equal(t, event.Action, got.Action)
	require.Equal(t, event.PersonID, got.PersonID)
}
