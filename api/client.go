// Package api is the gateway to the attendance server: one HTTP client with
// the base endpoint from config, bearer credentials attached to every
// outgoing request and authentication failures intercepted centrally.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/session"
)

type Client struct {
	base  string
	http  *http.Client
	store session.TokenStore
	log   core.Logger

	// onUnauthorized is the client-wide 401 hook: the persisted pair has
	// already been cleared when it runs; it forces navigation to the login
	// view. Individual callers never special-case 401s.
	onUnauthorized func()
}

func NewClient(conf *core.Config, store session.TokenStore, log core.Logger) *Client {
	return &Client{
		base:  conf.APIURL,
		http:  &http.Client{Timeout: conf.RequestTimeout},
		store: store,
		log:   log,
	}
}

// OnUnauthorized installs the hook run whenever the server rejects the
// current token.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Health checks the server is reachable.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "api: marshaling request body")
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return errors.Wrap(err, "api: building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := c.checkResponse(resp); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "api: decoding response")
		}
	}
	return nil
}

// download streams a server-rendered blob (CSV/PDF export) into w.
func (c *Client) download(ctx context.Context, path string, query url.Values, w io.Writer) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "api: building request")
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := c.checkResponse(resp); err != nil {
		return err
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.Wrap(err, "api: streaming export")
	}
	return nil
}

// upload posts a single file as a multipart form.
func (c *Client) upload(ctx context.Context, path, field, filename string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return errors.Wrap(err, "api: building multipart form")
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.Wrap(err, "api: reading upload")
	}
	if err := mw.Close(); err != nil {
		return errors.Wrap(err, "api: closing multipart form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return errors.Wrap(err, "api: building request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := c.checkResponse(resp); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "api: decoding response")
		}
	}
	return nil
}

// send attaches the bearer token (if any) and a request ID, then executes.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if token, _, ok, err := c.store.Read(); err != nil {
		c.log.Warn("api: could not read credentials", err)
	} else if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "api: %s %s", req.Method, req.URL.Path)
	}
	return resp, nil
}

// checkResponse converts non-2xx responses into *Error. A 401 additionally
// clears the persisted credentials and fires the unauthorized hook; this is
// the one place that failure class is handled.
func (c *Client) checkResponse(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	apiErr := &Error{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Request.Header.Get("X-Request-ID"),
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Detail = payload.Detail
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Info(fmt.Sprintf("api: unauthorized on %s %s, clearing session", resp.Request.Method, resp.Request.URL.Path))
		if err := c.store.Clear(); err != nil {
			c.log.Warn("api: could not clear credentials", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	return apiErr
}
