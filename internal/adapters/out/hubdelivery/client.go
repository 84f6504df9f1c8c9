// Package hubdelivery is an HTTP client for the hub delivery service.
// It requests driver assignment for individual hub segments.
package hubdelivery

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

var _ ports.HubDeliveryClient = &Client{}

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

type assignDriverForSegmentResponse struct {
	HubDeliveryID string `json:"hubDeliveryId"`
	SegmentIndex  int    `json:"segmentIndex"`
	DriverID      string `json:"driverId"`
	DriverName    string `json:"driverName"`
	Status        string `json:"status"`
	Success       bool   `json:"success"`
	Message       string `json:"message"`
}

func (c *Client) AssignDriverForSegment(ctx context.Context, hubDeliveryID string, segmentIndex int) (ports.DriverAssignment, error) {
	endpoint := fmt.Sprintf("%s/v1/hub-delivery/internal/deliveries/%s/segments/%d/assign-driver",
		c.baseURL, url.PathEscape(hubDeliveryID), segmentIndex)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return ports.DriverAssignment{}, errors.Wrap(err, "new request")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return ports.DriverAssignment{}, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if err := assignmentStatusError(resp.StatusCode, "hub delivery service"); err != nil {
		return ports.DriverAssignment{}, err
	}

	var rb assignDriverForSegmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&rb); err != nil {
		return ports.DriverAssignment{}, errors.Wrap(err, "decode response")
	}

	return ports.DriverAssignment{
		DeliveryID:   rb.HubDeliveryID,
		SegmentIndex: rb.SegmentIndex,
		DriverID:     rb.DriverID,
		DriverName:   rb.DriverName,
		Status:       rb.Status,
		Success:      rb.Success,
		Message:      rb.Message,
	}, nil
}

// assignmentStatusError maps upstream HTTP statuses to the typed assignment
// failures callers match with errors.Is.
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
