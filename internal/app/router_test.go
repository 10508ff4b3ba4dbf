package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ridefare/internal/config"
	"ridefare/internal/handler"
	"ridefare/internal/redis"
	"ridefare/internal/service"
)

func newTestRouter(t *testing.T, deps RouterDeps) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	if deps.FareHandler == nil {
		deps.FareHandler = handler.NewFareHandler(service.NewFareService(nil), nil)
	}
	return NewRouter(deps)
}

func postFare(t *testing.T, router http.Handler, body, key string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/fares", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, RouterDeps{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_IdempotentFareQuote(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(testContext(t), config.RedisConfig{Addr: mr.Addr()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	router := newTestRouter(t, RouterDeps{
		ResponseStore:  redis.NewResponseStore(client),
		IdempotencyTTL: time.Minute,
	})

	quote := func() handler.FareResponse {
		w := postFare(t, router, `{"ride_type":"car","distance_km":2}`, "quote-1")
		require.Equal(t, http.StatusCreated, w.Code)

		var resp handler.FareResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	first := quote()
	second := quote()

	assert.Equal(t, 40.0, first.Fare)
	assert.Equal(t, first.ID, second.ID, "replayed quote keeps its id")
}

func TestRouter_FareOverflowIsNotCachedAsSuccess(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(testContext(t), config.RedisConfig{Addr: mr.Addr()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	router := newTestRouter(t, RouterDeps{
		ResponseStore:  redis.NewResponseStore(client),
		IdempotencyTTL: time.Minute,
	})

	for i := 0; i < 2; i++ {
		w := postFare(t, router, `{"ride_type":"car","distance_km":1e308}`, "huge-1")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp handler.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_DISTANCE", resp.Kind)
		assert.Equal(t, "Distance is too large to price", resp.Error)
	}
}

func TestRouter_NewRelicInstrumentedRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	nrApp := newOfflineNewRelicApp(t)

	client, err := NewRedisClient(testContext(t), config.RedisConfig{Addr: mr.Addr()}, nrApp)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	router := newTestRouter(t, RouterDeps{
		ResponseStore:  redis.NewResponseStore(client),
		IdempotencyTTL: time.Minute,
		NewRelicApp:    nrApp,
	})

	first := postFare(t, router, `{"ride_type":"bike","distance_km":5}`, "traced-1")
	require.Equal(t, http.StatusCreated, first.Code)
	assert.True(t, mr.Exists("idempotency:traced-1"))

	second := postFare(t, router, `{"ride_type":"bike","distance_km":5}`, "traced-1")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	rejected := postFare(t, router, `{"ride_type":"scooter","distance_km":5}`, "")
	assert.Equal(t, http.StatusBadRequest, rejected.Code)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(testContext(t), config.RedisConfig{Addr: addr}, nil)
	assert.Error(t, err)
}

func TestNewNewRelicApp_Disabled(t *testing.T) {
	nrApp, err := NewNewRelicApp(config.NewRelicConfig{Enabled: false, LicenseKey: "x"})
	require.NoError(t, err)
	assert.Nil(t, nrApp)

	nrApp, err = NewNewRelicApp(config.NewRelicConfig{Enabled: true})
	require.NoError(t, err)
	assert.Nil(t, nrApp)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
