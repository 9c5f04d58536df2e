// Package client posts finished assessments to the API.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/dto"
)

const submitPath = "/api/submit"

// SubmitError is returned when the API answers with a non-200 status.
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submission failed with status %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool                         `json:"success"`
	Message string                       `json:"message"`
	Data    dto.SubmitAssessmentResponse `json:"data"`
}

// Client talks to the assessment API.
type Client struct {
	baseURL string
	timeout time.Duration
}

// New constructs a client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

// Submit posts the payload once. There is no retry.
func (c *Client) Submit(req dto.SubmitAssessmentRequest) (dto.SubmitAssessmentResponse, error) {
	agent := fiber.Post(c.baseURL + submitPath)
	agent.JSON(req)
	agent.Timeout(c.timeout)
	if err := agent.Parse(); err != nil {
		return dto.SubmitAssessmentResponse{}, fmt.Errorf("invalid server url: %w", err)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return dto.SubmitAssessmentResponse{}, fmt.Errorf("submit request failed: %w", errors.Join(errs...))
	}

	var out envelope
	if err := json.Unmarshal(body, &out); err != nil {
		if status != fiber.StatusOK {
			return dto.SubmitAssessmentResponse{}, &SubmitError{StatusCode: status, Message: strings.TrimSpace(string(body))}
		}
		return dto.SubmitAssessmentResponse{}, fmt.Errorf("decode submit response: %w", err)
	}

	if status != fiber.StatusOK || !out.Success {
		return dto.SubmitAssessmentResponse{}, &SubmitError{StatusCode: status, Message: out.Message}
	}

	return out.Data, nil
}
