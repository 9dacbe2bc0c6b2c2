// Package mmradmin talks to the Matrix media repository admin API to set
// media attributes.
package mmradmin

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mtx01cc/mmrtools/internal/common"
)

// requestTimeout bounds each attribute call. The MMR admin endpoint can be
// very slow when the repository is mid-purge, hence the generous ceiling.
const requestTimeout = 600 * time.Second

// Result is the outcome of an attribute call that reached the server.
// Non-2xx responses are data, not errors: Status and Body carry whatever
// the server answered.
type Result struct {
	Status int
	Body   string
}

// OK reports whether the call succeeded (status in [200,300)).
func (r *Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client issues media-attribute requests against one server with one
// access token. Calls are strictly sequential; there is no retry logic.
type Client struct {
	server string
	token  string
	http   *resty.Client
}

func NewClient(server, token string) *Client {
	return &Client{
		server: server,
		token:  token,
		http:   resty.New().SetTimeout(requestTimeout),
	}
}

// SetPurpose sets the purpose attribute of mediaID to purpose ("pinned" or
// "none").
//
// An HTTP response of any status yields (*Result, nil); a transport-level
// failure (timeout, refused connection, DNS error) yields (nil, err).
// Callers branch on the error, then on Result.OK.
func (c *Client) SetPurpose(ctx context.Context, mediaID, purpose string) (*Result, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"purpose": purpose})
	if c.isLoopback() {
		// Local testing goes through a reverse proxy that needs to know
		// the real host.
		req.SetHeader(common.ForwardedHostHeader, common.DefaultServerName)
	}

	resp, err := req.Post(c.RequestURL(mediaID))
	if err != nil {
		return nil, fmt.Errorf("setting purpose of %s: %w", mediaID, err)
	}

	return &Result{Status: resp.StatusCode(), Body: resp.String()}, nil
}

// RequestURL returns the full attribute endpoint for mediaID, access token
// included, as it would be requested. Dry runs print it instead of calling.
func (c *Client) RequestURL(mediaID string) string {
	base := "https://matrix." + c.server
	if c.isLoopback() {
		base = "http://" + c.server
	}
	endpoint := fmt.Sprintf("%s/_matrix/media/unstable/admin/media/%s/%s/attributes",
		base, c.server, mediaID)
	query := url.Values{common.AccessTokenQueryParam: {c.token}}
	return endpoint + "?" + query.Encode()
}

func (c *Client) isLoopback() bool {
	host := c.server
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
