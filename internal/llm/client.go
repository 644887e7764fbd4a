package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-interviewer/internal/interview"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	// Sampling parameters for both prompt kinds: high temperature keeps
	// question lists fresh between sessions, 500 tokens is plenty for a
	// numbered list or a Score/Comment pair.
	temperature     = 1.2
	maxOutputTokens = 500

	retryAttempts = 3
	retryDelay    = 5 * time.Second
)

const (
	minQuestions = 1
	maxQuestions = 20
)

// Client wraps the Gemini API behind the interview.Generator and
// interview.Evaluator contracts. Every call is one-shot; the client keeps no
// conversation state.
type Client struct {
	client  *genai.Client
	model   string
	prompts Prompts
	log     *zap.Logger
}

func NewClient(ctx context.Context, apiKey, model string, prompts Prompts, log *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{
		client:  client,
		model:   model,
		prompts: prompts,
		log:     log,
	}, nil
}

func (c *Client) GenerateQuestions(ctx context.Context, field string, tone interview.Tone, count int) (string, error) {
	if count < minQuestions {
		count = minQuestions
	}
	if count > maxQuestions {
		count = maxQuestions
	}

	text, err := c.generate(ctx, "generate_questions", c.prompts.QuestionsPrompt(field, tone, count))
	if err != nil {
		return "", fmt.Errorf("generate questions: %w", err)
	}
	return text, nil
}

func (c *Client) EvaluateAnswer(ctx context.Context, question, answer string) (string, error) {
	text, err := c.generate(ctx, "evaluate_answer", c.prompts.EvaluationPrompt(question, answer))
	if err != nil {
		return "", fmt.Errorf("evaluate answer: %w", err)
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, action, prompt string) (string, error) {
	start := time.Now()

	resp, err := retry.DoWithData(
		func() (*genai.GenerateContentResponse, error) {
			return c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
				Temperature:     genai.Ptr[float32](temperature),
				MaxOutputTokens: maxOutputTokens,
			})
		},
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.RetryIf(isRateLimited),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		c.log.Warn("model call failed",
			zap.String("action", action),
			zap.String("model", c.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}

	text := extractText(resp)
	c.log.Info("model call",
		zap.String("action", action),
		zap.String("model", c.model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_chars", len(text)))
	return text, nil
}

func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "429") || strings.Contains(err.Error(), "RESOURCE_EXHAUSTED")
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	return resp.Text()
}
