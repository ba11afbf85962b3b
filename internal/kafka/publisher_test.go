package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/giftlist/internal/domain"
	"github.com/Gunvolt24/giftlist/internal/kafka/mocks"
	"github.com/Gunvolt24/giftlist/pkg/metrics"
)

func TestPublisher_Publish_KeyAndPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockmessageWriter(ctrl)
	p := &Publisher{writer: w, topic: "registry-events"}

	ev := &domain.RegistryEvent{
		Kind:        domain.EventReservation,
		ProductID:   "p1",
		ProductName: "Panelas",
		GuestName:   "Ana",
		OccurredAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	before := testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("registry-events", "ok"))

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			require.Equal(t, "p1", string(msgs[0].Key))
			var got domain.RegistryEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			require.Equal(t, *ev, got)
			require.Equal(t, "kind", msgs[0].Headers[0].Key)
			return nil
		})

	require.NoError(t, p.Publish(context.Background(), ev))
	require.Equal(t, before+1, testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("registry-events", "ok")))
}

func TestPublisher_Publish_SurpriseKeyedByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockmessageWriter(ctrl)
	p := &Publisher{writer: w, topic: "registry-events"}

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Equal(t, domain.EventSurprise, string(msgs[0].Key))
			return nil
		})

	require.NoError(t, p.Publish(context.Background(), &domain.RegistryEvent{Kind: domain.EventSurprise, ProductName: "Cafeteira"}))
}

func TestPublisher_Publish_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockmessageWriter(ctrl)
	p := &Publisher{writer: w, topic: "registry-events"}

	before := testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("registry-events", "error"))
	boom := errors.New("broker down")
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(boom)

	err := p.Publish(context.Background(), &domain.RegistryEvent{Kind: domain.EventReservation, ProductID: "p1"})
	require.ErrorIs(t, err, boom)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues("registry-events", "error")))
}

func TestPublisher_Publish_NilEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := &Publisher{writer: mocks.NewMockmessageWriter(ctrl), topic: "t"}
	require.Error(t, p.Publish(context.Background(), nil))
}

func TestPublisher_CloseOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockmessageWriter(ctrl)
	w.EXPECT().Close().Return(nil).Times(1)

	p := &Publisher{writer: w, topic: "t"}
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}
