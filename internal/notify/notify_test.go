package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fleshka4/swap-quote/internal/notify"
	"github.com/fleshka4/swap-quote/internal/notify/mock"
)

func swapDone() notify.Notification {
	return notify.Notification{
		Title:   "Swap Complete",
		Message: "Exchange finalized on Base.",
		Type:    notify.TypeSuccess,
		Icon:    "zap",
	}
}

func TestLogNotifier(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	n := notify.NewLogNotifier(zap.New(core))

	require.NoError(t, n.Notify(context.Background(), swapDone()))
	require.NoError(t, n.Notify(context.Background(), notify.Notification{Title: "Swap Failed", Type: notify.TypeError}))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "Swap Complete", entries[0].ContextMap()["title"])
	require.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestMulti(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	first := mock.NewMockNotifier(ctrl)
	second := mock.NewMockNotifier(ctrl)

	first.EXPECT().Notify(gomock.Any(), swapDone()).Return(errors.New("first down"))
	second.EXPECT().Notify(gomock.Any(), swapDone()).Return(nil)

	err := notify.Multi{first, second}.Notify(context.Background(), swapDone())
	require.Error(t, err)
	require.Contains(t, err.Error(), "first down")

	require.NoError(t, notify.Multi{}.Notify(context.Background(), swapDone()))
}

func TestWebhookNotifier_Payload(t *testing.T) {
	t.Parallel()

	got := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL, "sim_abc", "https://app.example")
	err := n.Notify(context.Background(), notify.Notification{
		Title:   strings.Repeat("T", 40),
		Message: strings.Repeat("é", 200),
	})
	require.NoError(t, err)

	body := <-got
	require.Len(t, []rune(body["title"].(string)), 32)
	require.Len(t, []rune(body["body"].(string)), 128)
	require.Equal(t, "https://app.example", body["targetUrl"])
	require.Equal(t, []any{"sim_abc"}, body["tokens"])

	_, err = uuid.Parse(body["notificationId"].(string))
	require.NoError(t, err)
}

func TestWebhookNotifier_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL, "tok", "",
		notify.WithMaxTries(5),
		notify.WithInitialInterval(time.Millisecond),
	)
	require.NoError(t, n.Notify(context.Background(), swapDone()))
	require.Equal(t, int32(3), calls.Load())
}

func TestWebhookNotifier_ClientErrorIsPermanent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL, "tok", "",
		notify.WithMaxTries(5),
		notify.WithInitialInterval(time.Millisecond),
	)
	require.Error(t, n.Notify(context.Background(), swapDone()))
	require.Equal(t, int32(1), calls.Load())
}

func TestWebhookNotifier_GivesUp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL, "tok", "",
		notify.WithMaxTries(2),
		notify.WithInitialInterval(time.Millisecond),
		notify.WithHTTPClient(srv.Client()),
	)
	require.Error(t, n.Notify(context.Background(), swapDone()))
	require.Equal(t, int32(2), calls.Load())
}
