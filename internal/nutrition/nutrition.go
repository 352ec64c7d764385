// Package nutrition asks a generative language model whether a food fits a
// training diet
package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Recommendation is the short verdict on a food.
type Recommendation string

const (
	Yes          Recommendation = "Yes"
	No           Recommendation = "No"
	InModeration Recommendation = "In moderation"
)

// ParseRecommendation normalizes a model answer. "Sometimes" is accepted as
// a synonym of "In moderation".
func ParseRecommendation(s string) (Recommendation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return Yes, nil
	case "no":
		return No, nil
	case "in moderation", "sometimes":
		return InModeration, nil
	}

	return "", ErrInvalidRecommendation.Fmt(s)
}

// Result is the nutritional breakdown of a food.
type Result struct {
	FoodName       string         `json:"foodName"`
	Recommendation Recommendation `json:"recommendation"`
	Explanation    string         `json:"explanation"`
	Calories       float64        `json:"calories"`
	Protein        float64        `json:"protein"`
	Carbs          float64        `json:"carbs"`
	Fats           float64        `json:"fats"`
}

// Client talks to a generateContent endpoint.
type Client struct {
	http     *http.Client
	endpoint string
	model    string
	apiKey   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a client for model served at endpoint.
func New(endpoint, model, apiKey string, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: defaultTimeout},
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   apiKey,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   responseSchema `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func prompt(query string) string {
	return fmt.Sprintf(
		"Please provide nutritional information for %q. Can I eat it? "+
			"Give a simple yes/no/sometimes answer and a brief explanation. "+
			"Provide estimated values for calories, protein, carbohydrates, and fats.",
		query,
	)
}

func newRequest(query string) generateRequest {
	return generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt(query)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: responseSchema{
				Type: "OBJECT",
				Properties: map[string]schemaProperty{
					"foodName": {Type: "STRING"},
					"recommendation": {
						Type:        "STRING",
						Description: "A simple 'Yes', 'No', or 'In moderation'.",
					},
					"explanation": {Type: "STRING"},
					"calories":    {Type: "NUMBER"},
					"protein":     {Type: "NUMBER"},
					"carbs":       {Type: "NUMBER"},
					"fats":        {Type: "NUMBER"},
				},
				Required: []string{
					"foodName",
					"recommendation",
					"explanation",
					"calories",
					"protein",
					"carbs",
					"fats",
				},
			},
		},
	}
}

func (c *Client) url() string {
	u := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, url.PathEscape(c.model))

	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}

	return u
}

// Lookup returns the nutritional breakdown of the food described by query.
func (c *Client) Lookup(ctx context.Context, query string) (Result, error) {
	var res Result

	query = strings.TrimSpace(query)
	if query == "" {
		return res, ErrEmptyQuery
	}

	body, err := json.Marshal(newRequest(query))
	if err != nil {
		return res, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(body))
	if err != nil {
		return res, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return res, ErrRequestFailed.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return res, ErrStatus.Fmt(resp.StatusCode)
	}

	var gen generateResponse

	err = json.NewDecoder(resp.Body).Decode(&gen)
	if err != nil {
		return res, ErrUnexpectedResponse.Wrap(err)
	}

	if len(gen.Candidates) == 0 || len(gen.Candidates[0].Content.Parts) == 0 {
		return res, ErrUnexpectedResponse
	}

	return decodeResult(gen.Candidates[0].Content.Parts[0].Text)
}

func decodeResult(text string) (Result, error) {
	var raw struct {
		Result
		Recommendation string `json:"recommendation"`
	}

	err := json.Unmarshal([]byte(text), &raw)
	if err != nil {
		return Result{}, ErrUnexpectedResponse.Wrap(err)
	}

	res := raw.Result

	res.Recommendation, err = ParseRecommendation(raw.Recommendation)
	if err != nil {
		return Result{}, err
	}

	slog.Debug(
		"nutrition lookup",
		slog.String("food", res.FoodName),
		slog.String("recommendation", string(res.Recommendation)),
	)

	return res, nil
}
