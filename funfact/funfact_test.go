package funfact

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	fact string
	err  error
}

func (s stubSource) Fact(context.Context, int64) (string, error) {
	return s.fact, s.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestClient_Fact(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("6 is the smallest perfect number."))
	}))
	defer srv.Close()

	fact, err := NewClient(srv.URL+"/", time.Second).Fact(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, "6 is the smallest perfect number.", fact)
	assert.Equal(t, "/6/math", gotPath)
}

func TestClient_Fact_NegativeNumberPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fact(context.Background(), -42)
	require.NoError(t, err)
	assert.Equal(t, "/-42/math", gotPath)
}

func TestClient_Fact_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fact(context.Background(), 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Fact_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(srv.URL, 50*time.Millisecond).Fact(context.Background(), 6)
	require.Error(t, err)
}

func TestClient_Fact_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Fact(context.Background(), 6)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnexpectedStatus))
}

func TestFallback(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{153, "153 is an Armstrong number because 1^3 + 5^3 + 3^3 = 153"},
		{-153, "-153 is an Armstrong number because 1^3 + 5^3 + 3^3 = 153"},
		{0, "0 is an Armstrong number because 0^1 = 0"},
		{9474, "9474 is an Armstrong number because 9^4 + 4^4 + 7^4 + 4^4 = 9474"},
		{42, "The number 42 has 2 digits"},
		{-42, "The number -42 has 2 digits"},
		{1000, "The number 1000 has 4 digits"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fallback(tt.n))
	}
}

func TestResolver_UsesSource(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	r := NewResolver(stubSource{fact: "remote fact"}, quietLogger(), metrics)

	assert.Equal(t, "remote fact", r.Resolve(context.Background(), 42))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Fallbacks))
}

func TestResolver_FallsBackOnError(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	r := NewResolver(stubSource{err: errors.New("connection refused")}, quietLogger(), metrics)

	assert.Equal(t, "The number 42 has 2 digits", r.Resolve(context.Background(), 42))
	assert.Equal(t, "371 is an Armstrong number because 3^3 + 7^3 + 1^3 = 371", r.Resolve(context.Background(), 371))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Fallbacks))
}

func TestResolver_FallsBackOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL, time.Second), quietLogger(), NewMetrics(prometheus.NewRegistry()))
	assert.Equal(t, "The number 10 has 2 digits", r.Resolve(context.Background(), 10))
}
