package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("gemini returned no text")

const (
	defaultTemperature float32 = 0.8
	defaultTimeout             = 30 * time.Second
)

// Client - 프롬프트 하나 -> 텍스트 하나 (재시도 없음)
type Client struct {
	genaiClient *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// NewClient - Gemini API 키 기반 클라이언트 생성
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		genaiClient: genaiClient,
		model:       model,
		temperature: defaultTemperature,
		timeout:     defaultTimeout,
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

// GenerateText - 텍스트 응답 생성
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.genaiClient.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(c.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}

	return ExtractText(result)
}

// ExtractText - 후보 응답의 텍스트 파트를 이어붙임 (thought 파트 제외)
func ExtractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, candidate := range result.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought || part.Text == "" {
				continue
			}
			sb.WriteString(part.Text)
		}
		// 첫 번째 후보만 사용
		if sb.Len() > 0 {
			break
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
