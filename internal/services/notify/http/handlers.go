// Package http exposes the notification feed
package http

import (
	"net/http"
	"strconv"

	"dataproc/internal/modkit/httpkit"
	perr "dataproc/internal/platform/errors"
	"dataproc/internal/services/notify/service"
)

// Feed is the read side of the notify service
type Feed interface {
	Since(after uint64) []service.Notification
}

// Register mounts the notification routes
func Register(r httpkit.Router, f Feed) {
	httpkit.Get(r, "/", func(req *http.Request) (any, error) { return list(f, req) })
}

// FeedResponse is a page of notifications
type FeedResponse struct {
	Items []service.Notification `json:"items"`
	// Next is the cursor to pass as ?after= on the next poll
	Next uint64 `json:"next" example:"12"`
}

// swagger:route GET /notifications Notifications notifyList
// @Summary Notifications newer than the cursor, oldest first
// @Tags Notifications
// @Produce json
// @Param after query int false "last seq already seen"
// @Success 200 {object} FeedResponse
// @Failure 400 {object} httpkit.Envelope
// @Router /notifications [get]
func list(f Feed, r *http.Request) (any, error) {
	var after uint64
	if v := r.URL.Query().Get("after"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "after must be a non-negative integer"), "after")
		}
		after = n
	}
	items := f.Since(after)
	next := after
	if len(items) > 0 {
		next = items[len(items)-1].Seq
	}
	if items == nil {
		items = []service.Notification{}
	}
	return FeedResponse{Items: items, Next: next}, nil
}
