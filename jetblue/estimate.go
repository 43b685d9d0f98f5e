package jetblue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// DefaultEstimateURL is the best fares endpoint
const DefaultEstimateURL = "https://jbrest.jetblue.com/bff/bff-service/bestFares"

// FareEstimate is the lowest fare shown for one day of the month calendar
type FareEstimate struct {
	Date   time.Time
	Amount float64
	Tax    float64 // not reliable
	Seats  int     // not reliable
}

// EstimateResponse holds the month calendar for both directions
type EstimateResponse struct {
	CurrencyCode  string
	OutboundFares []FareEstimate
	InboundFares  []FareEstimate
}

type rawEstimate struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Tax    float64 `json:"tax"`
	Seats  int     `json:"seats"`
}

type rawEstimateResponse struct {
	CurrencyCode  string        `json:"currencyCode"`
	OutboundFares []rawEstimate `json:"outboundFares"`
	InboundFares  []rawEstimate `json:"inboundFares"`
}

// EstimateClient queries the best fares month calendar.
type EstimateClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewEstimateClient creates a client paced at requestsPerSecond with the given burst.
// An empty baseURL uses DefaultEstimateURL; a non-positive rate disables pacing.
func NewEstimateClient(baseURL string, requestsPerSecond float64, burst int, timeout time.Duration) *EstimateClient {
	if baseURL == "" {
		baseURL = DefaultEstimateURL
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &EstimateClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// EstimateURL builds the request URL for one month.
func (c *EstimateClient) EstimateURL(origin, destination string, month time.Time, p PassengerInfo) string {
	v := url.Values{}
	v.Set("origin", origin)
	v.Set("destination", destination)
	v.Set("month", month.Format("January 2006"))
	v.Set("fareType", "LOWEST")
	v.Set("tripType", "RETURN")
	v.Set("adult", strconv.Itoa(p.Adults))
	v.Set("child", strconv.Itoa(p.Children))
	v.Set("infant", strconv.Itoa(p.Infants))
	return c.baseURL + "?" + v.Encode()
}

// GetFares fetches the month calendar containing month.
func (c *EstimateClient) GetFares(ctx context.Context, origin, destination string, month time.Time, p PassengerInfo) (*EstimateResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	u := c.EstimateURL(origin, destination, month, p)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, u)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeEstimate(body)
}

// GetMonths fetches consecutive month calendars starting at first.
func (c *EstimateClient) GetMonths(ctx context.Context, origin, destination string, first time.Time, months int, p PassengerInfo) ([]*EstimateResponse, error) {
	out := make([]*EstimateResponse, 0, months)
	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		r, err := c.GetFares(ctx, origin, destination, start.AddDate(0, i, 0), p)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeEstimate(body []byte) (*EstimateResponse, error) {
	var raw rawEstimateResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode estimate: %w", err)
	}
	out, err := convertEstimates(raw.OutboundFares)
	if err != nil {
		return nil, fmt.Errorf("outboundFares: %w", err)
	}
	in, err := convertEstimates(raw.InboundFares)
	if err != nil {
		return nil, fmt.Errorf("inboundFares: %w", err)
	}
	return &EstimateResponse{CurrencyCode: raw.CurrencyCode, OutboundFares: out, InboundFares: in}, nil
}

func convertEstimates(raw []rawEstimate) ([]FareEstimate, error) {
	fares := make([]FareEstimate, 0, len(raw))
	for i, r := range raw {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid date %q", i, r.Date)
		}
		fares = append(fares, FareEstimate{Date: d, Amount: r.Amount, Tax: r.Tax, Seats: r.Seats})
	}
	return fares, nil
}
