package bfhl

import (
	"context"
	"encoding/json"
	"net/http"

	perr "dataproc/internal/platform/errors"
	str "dataproc/internal/platform/strings"
)

const (
	pathProcess  = "/bfhl"
	pathLogin    = "/login"
	pathRegister = "/register"
)

// Process POSTs payload to /bfhl and returns the raw 2xx body.
// A non-2xx answer is returned as *StatusError wrapped with ErrorCodeUpstream.
func (c *Client) Process(ctx context.Context, token string, payload any) (json.RawMessage, error) {
	status, body, err := c.do(ctx, http.MethodPost, pathProcess, token, payload)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		se := newStatusError(pathProcess, status, body)
		return nil, perr.Wrap(se, perr.ErrorCodeUpstream, "bfhl process rejected")
	}
	return body, nil
}

// OperationCode calls GET /bfhl
func (c *Client) OperationCode(ctx context.Context, token string) (int, error) {
	status, body, err := c.do(ctx, http.MethodGet, pathProcess, token, nil)
	if err != nil {
		return 0, err
	}
	if !success(status) {
		return 0, perr.Wrap(newStatusError(pathProcess, status, body), perr.ErrorCodeUpstream, "bfhl operation code rejected")
	}
	var out opCodeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeUpstream, "bfhl operation code decode")
	}
	n, err := out.OperationCode.Int64()
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeUpstream, "bfhl operation code %q", out.OperationCode)
	}
	return int(n), nil
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, in Credentials) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, pathLogin, "", in)
	if err != nil {
		return "", err
	}
	if !success(status) {
		se := newStatusError(pathLogin, status, body)
		return "", perr.Wrap(se, loginCode(status), str.FirstNonEmpty(se.Message, "Login failed"))
	}
	var out loginResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUpstream, "bfhl login decode")
	}
	tok := out.Token
	if tok == "" {
		tok = out.AccessToken
	}
	if tok == "" {
		return "", perr.Upstreamf("bfhl login returned no token")
	}
	return tok, nil
}

// Register creates an account and returns the service's answer unchanged
func (c *Client) Register(ctx context.Context, in Registration) (json.RawMessage, error) {
	status, body, err := c.do(ctx, http.MethodPost, pathRegister, "", in)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		se := newStatusError(pathRegister, status, body)
		return nil, perr.Wrap(se, loginCode(status), str.FirstNonEmpty(se.Message, "Registration failed"))
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	return body, nil
}

func loginCode(status int) perr.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return perr.ErrorCodeUnauthorized
	case http.StatusForbidden:
		return perr.ErrorCodeForbidden
	case http.StatusConflict:
		return perr.ErrorCodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return perr.ErrorCodeValidation
	case http.StatusTooManyRequests:
		return perr.ErrorCodeTooManyRequests
	default:
		return perr.ErrorCodeUpstream
	}
}

// Ping reports whether the service answers HTTP at all. Any status counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.do(ctx, http.MethodGet, "/", "", nil)
	return err
}
