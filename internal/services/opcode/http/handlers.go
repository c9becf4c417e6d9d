// Package http exposes the processing service's operation code
package http

import (
	"context"
	"net/http"

	"dataproc/internal/modkit/httpkit"
)

// Source fetches the operation code with an optional bearer token
type Source interface {
	OperationCode(ctx context.Context, token string) (int, error)
}

// TokenSource hands out the current bearer token
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// OperationCodeResponse mirrors GET /bfhl
type OperationCodeResponse struct {
	OperationCode int `json:"operation_code" example:"1"`
}

// Register mounts the operation code route
func Register(r httpkit.Router, src Source, tokens TokenSource) {
	// swagger:route GET /operation-code OperationCode opcodeGet
	// @Summary Operation code reported by the processing service
	// @Tags OperationCode
	// @Produce json
	// @Success 200 {object} OperationCodeResponse
	// @Failure 502 {object} httpkit.Envelope
	// @Router /operation-code [get]
	httpkit.Get(r, "/", func(req *http.Request) (any, error) {
		token := ""
		if tokens != nil {
			token, _ = tokens.Token(req.Context())
		}
		n, err := src.OperationCode(req.Context(), token)
		if err != nil {
			return nil, err
		}
		return OperationCodeResponse{OperationCode: n}, nil
	})
}
