package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/spot_tracker/internal/config"
	"github.com/shenikar/spot_tracker/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestPublish_PushesEventToQueue(t *testing.T) {
	srv, client := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)

	spot := &models.Spot{ID: 5, Name: "Roof"}
	event := NewSpotEvent(EventSpotCreated, spot.ID, spot)
	require.NoError(t, publisher.Publish(context.Background(), event))

	items, err := srv.List(webhookQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var decoded SpotEvent
	require.NoError(t, json.Unmarshal([]byte(items[0]), &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, EventSpotCreated, decoded.Type)
	assert.Equal(t, "Roof", decoded.Spot.Name)
}

func TestWorker_DeliversSignedEvent(t *testing.T) {
	_, client := newTestRedis(t)

	received := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies <- body
		received <- r
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()

	cfg := &config.Config{
		WebhookURL:        hook.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	}
	worker := NewWebhookWorker(client, newTestLogger(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	event := NewSpotEvent(EventSpotDeleted, 9, nil)
	require.NoError(t, NewRedisWebhookPublisher(client).Publish(ctx, event))

	select {
	case req := <-received:
		body := <-bodies
		assert.Equal(t, EventSpotDeleted, req.Header.Get("X-Webhook-Event"))
		assert.Equal(t, generateHMACSHA256(string(body), "s3cret"), req.Header.Get("X-Webhook-Signature"))
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestProcessWebhookEvent_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()

	cfg := &config.Config{
		WebhookURL:        hook.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(nil, newTestLogger(), cfg)

	ok := worker.processWebhookEvent(context.Background(), NewSpotEvent(EventSpotsCleared, 0, nil), `{}`)
	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_GivesUp(t *testing.T) {
	var calls atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer hook.Close()

	cfg := &config.Config{
		WebhookURL:        hook.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(nil, newTestLogger(), cfg)

	ok := worker.processWebhookEvent(context.Background(), NewSpotEvent(EventSpotUpdated, 1, nil), `{}`)
	assert.False(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	worker := NewWebhookWorker(nil, newTestLogger(), &config.Config{})
	assert.False(t, worker.processWebhookEvent(context.Background(), NewSpotEvent(EventSpotCreated, 1, nil), `{}`))
}
