// Package lastmile is an HTTP client for the last mile delivery service.
package lastmile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"track/internal/core/ports"
)

var _ ports.LastMileClient = &Client{}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	return &Client{
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type assignDriverResponse struct {
	LastMileDeliveryID string `json:"lastMileDeliveryId"`
	DriverID           string `json:"driverId"`
	DriverName         string `json:"driverName"`
	Status             string `json:"status"`
	Success            bool   `json:"success"`
	Message            string `json:"message"`
}

func (c *Client) AssignDriver(ctx context.Context, lastMileDeliveryID string) (ports.DriverAssignment, error) {
	endpoint := fmt.Sprintf("%s/v1/last-mile-delivery/internal/deliveries/%s/assign-driver",
		c.baseURL, url.PathEscape(lastMileDeliveryID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return ports.DriverAssignment{}, errors.Wrap(err, "new request")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return ports.DriverAssignment{}, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if err := assignmentStatusError(resp.StatusCode, "last mile service"); err != nil {
		return ports.DriverAssignment{}, err
	}

	var rb assignDriverResponse
	if err := json.NewDecoder(resp.Body).Decode(&rb); err != nil {
		return ports.DriverAssignment{}, errors.Wrap(err, "decode response")
	}

	return ports.DriverAssignment{
		DeliveryID: rb.LastMileDeliveryID,
		DriverID:   rb.DriverID,
		DriverName: rb.DriverName,
		Status:     rb.Status,
		Success:    rb.Success,
		Message:    rb.Message,
	}, nil
}

func assignmentStatusError(statusCode int, service string) error {
	switch {
	case statusCode/100 == 2:
		return nil
	case statusCode == http.StatusBadRequest:
		return errors.Wrapf(ports.ErrAssignmentBadRequest, "%s http %d", service, statusCode)
	case statusCode == http.StatusNotFound:
		return errors.Wrapf(ports.ErrAssignmentNotFound, "%s http %d", service, statusCode)
	case statusCode == http.StatusServiceUnavailable:
		return errors.Wrapf(ports.ErrUpstreamUnavailable, "%s http %d", service, statusCode)
	default:
		return errors.Wrapf(ports.ErrUpstreamFailure, "%s http %d", service, statusCode)
	}
}
