package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPProvider reads logged days from the external daily logging service:
// GET {apiURL}/owners/{ownerID}/days/{YYYY-MM-DD}
type HTTPProvider struct {
	apiURL     string
	httpClient *http.Client
}

func NewHTTPProvider(apiURL string, httpClient *http.Client) *HTTPProvider {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &HTTPProvider{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		httpClient: httpClient,
	}
}

func (p *HTTPProvider) GetDay(ctx context.Context, ownerID string, day time.Time) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date := day.Format(pkg.DateLayout)
	dayURL := fmt.Sprintf("%s/owners/%s/days/%s", p.apiURL, url.PathEscape(ownerID), date)
	log.Tracef("calling nutrition api: %s", dayURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dayURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", pkg.ContentType.JSON)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %s: %w", err, pkg.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("nutrition day %s: %w", date, pkg.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("nutrition api responded %d: %w", resp.StatusCode, pkg.ErrUpstreamUnavailable)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read nutrition api response: %s: %w", err, pkg.ErrUpstreamUnavailable)
	}

	d := &Day{}
	if err := json.Unmarshal(respBytes, d); err != nil {
		return nil, fmt.Errorf("unmarshal nutrition api response: %s: %w", err, pkg.ErrUpstreamUnavailable)
	}
	if d.OwnerID == "" {
		d.OwnerID = ownerID
	}
	if d.Date == "" {
		d.Date = date
	}

	return d, nil
}
