package jetblue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const estimateBody = `{
  "currencyCode": "USD",
  "outboundFares": [
    {"date": "2022-06-01", "amount": 120, "tax": 20.5, "seats": 4},
    {"date": "2022-06-02", "amount": 99.5, "tax": 18, "seats": 0}
  ],
  "inboundFares": [
    {"date": "2022-06-01", "amount": 130, "tax": 21, "seats": 9}
  ]
}`

func TestEstimateClientGetFares(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(estimateBody))
	}))
	defer srv.Close()

	c := NewEstimateClient(srv.URL, 0, 1, time.Second)
	month := time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)
	resp, err := c.GetFares(context.Background(), "JFK", "MIA", month, PassengerInfo{Adults: 1})
	require.NoError(t, err)

	q := got.URL.Query()
	assert.Equal(t, "June 2022", q.Get("month"))
	assert.Equal(t, "LOWEST", q.Get("fareType"))
	assert.Equal(t, "RETURN", q.Get("tripType"))
	assert.Equal(t, "1", q.Get("adult"))
	assert.Equal(t, "0", q.Get("child"))

	assert.Equal(t, "USD", resp.CurrencyCode)
	require.Len(t, resp.OutboundFares, 2)
	assert.Equal(t, time.Date(2022, 6, 2, 0, 0, 0, 0, time.UTC), resp.OutboundFares[1].Date)
	assert.Equal(t, 99.5, resp.OutboundFares[1].Amount)
	require.Len(t, resp.InboundFares, 1)
	assert.Equal(t, 9, resp.InboundFares[0].Seats)
}

func TestEstimateClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("origin") == "BAD" {
			_, _ = w.Write([]byte(`{"outboundFares":[{"date":"June 1st"}]}`))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewEstimateClient(srv.URL, 0, 1, time.Second)
	_, err := c.GetFares(context.Background(), "JFK", "MIA", time.Now(), PassengerInfo{Adults: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")

	_, err = c.GetFares(context.Background(), "BAD", "MIA", time.Now(), PassengerInfo{Adults: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outboundFares")
}

func TestEstimateClientGetMonths(t *testing.T) {
	var mu sync.Mutex
	var months []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		months = append(months, r.URL.Query().Get("month"))
		mu.Unlock()
		_, _ = w.Write([]byte(`{"currencyCode":"USD","outboundFares":[],"inboundFares":[]}`))
	}))
	defer srv.Close()

	c := NewEstimateClient(srv.URL, 100, 3, time.Second)
	first := time.Date(2022, 11, 30, 0, 0, 0, 0, time.UTC)
	resp, err := c.GetMonths(context.Background(), "JFK", "MIA", first, 3, PassengerInfo{Adults: 1})
	require.NoError(t, err)
	assert.Len(t, resp, 3)
	assert.Equal(t, []string{"November 2022", "December 2022", "January 2023"}, months)
}

func TestEstimateClientCancelled(t *testing.T) {
	c := NewEstimateClient("http://127.0.0.1:0", 0.001, 1, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetFares(ctx, "JFK", "MIA", time.Now(), PassengerInfo{Adults: 1})
	assert.Error(t, err)
}
