package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restockwatch/internal/config"
	"restockwatch/internal/models"
)

func TestDiscordNotifier_Send(t *testing.T) {
	var received models.DiscordMessagePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	dn := NewDiscordNotifier(zerolog.Nop(), server.Client())
	payload := models.DiscordMessagePayload{
		Username: "RestockWatch",
		Embeds:   []models.DiscordEmbed{{Title: "test embed"}},
	}

	err := dn.Send(context.Background(), server.URL, payload)

	require.NoError(t, err)
	assert.Equal(t, "RestockWatch", received.Username)
	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "test embed", received.Embeds[0].Title)
}

func TestDiscordNotifier_SendNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	dn := NewDiscordNotifier(zerolog.Nop(), server.Client())

	err := dn.Send(context.Background(), server.URL, models.DiscordMessagePayload{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDiscordNotifier_SendInvalidURL(t *testing.T) {
	dn := NewDiscordNotifier(zerolog.Nop(), nil)

	err := dn.Send(context.Background(), "not a url", models.DiscordMessagePayload{})

	require.Error(t, err)
}

func TestNotificationHelper_EmptyProductListIsNoOp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	dn := NewDiscordNotifier(zerolog.Nop(), server.Client())
	helper := NewNotificationHelper(dn, config.NewDefaultNotificationConfig(), server.URL, zerolog.Nop())

	helper.NotifyNewProducts(context.Background(), "https://a.test/", nil, "")

	assert.Zero(t, calls.Load(), "an empty product list must never produce an alert")
}

func TestNotificationHelper_DeliveryFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	dn := NewDiscordNotifier(zerolog.Nop(), server.Client())
	helper := NewNotificationHelper(dn, config.NewDefaultNotificationConfig(), server.URL, zerolog.Nop())

	// Must not panic or propagate the failure.
	helper.NotifyNewProducts(context.Background(), "https://a.test/", []models.ProductRecord{{Title: "Elite Trainer Box"}}, "")
}
