// Package assistant — клиент внешнего диалогового ассистента (OpenAI Assistants API).
//
// Ассистент внутри себя моделирует thread, но для нас он stateless: на каждый
// ход создаётся новый thread, в него перекладывается вся история диалога,
// запускается run и опрашивается до терминального статуса.
package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/artbeauty/intake-bot/internal/model"
)

const (
	DefaultPollInterval = time.Second
	DefaultTimeout      = 60 * time.Second
)

// Client — обёртка над OpenAI Assistants API
type Client struct {
	client       openai.Client
	assistantID  string
	pollInterval time.Duration
	timeout      time.Duration
	logger       *zap.Logger
}

// NewClient создаёт клиента ассистента.
// pollInterval и timeout <= 0 заменяются значениями по умолчанию.
func NewClient(apiKey, assistantID string, pollInterval, timeout time.Duration, logger *zap.Logger) *Client {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client:       openai.NewClient(option.WithAPIKey(apiKey)),
		assistantID:  assistantID,
		pollInterval: pollInterval,
		timeout:      timeout,
		logger:       logger,
	}
}

// Respond отправляет историю диалога ассистенту и возвращает его ответ
func (c *Client) Respond(ctx context.Context, history []model.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	thread, err := c.client.Beta.Threads.New(ctx, openai.BetaThreadNewParams{})
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}

	for _, msg := range history {
		role := openai.BetaThreadMessageNewParamsRoleUser
		if msg.Role == model.RoleAssistant {
			role = openai.BetaThreadMessageNewParamsRoleAssistant
		}
		_, err := c.client.Beta.Threads.Messages.New(ctx, thread.ID, openai.BetaThreadMessageNewParams{
			Role: role,
			Content: openai.BetaThreadMessageNewParamsContentUnion{
				OfString: openai.String(msg.Content),
			},
		})
		if err != nil {
			return "", fmt.Errorf("add message to thread: %w", err)
		}
	}

	run, err := c.client.Beta.Threads.Runs.New(ctx, thread.ID, openai.BetaThreadRunNewParams{
		AssistantID: c.assistantID,
	})
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}

	if err := c.waitForRun(ctx, thread.ID, run.ID); err != nil {
		return "", err
	}

	return c.latestReply(ctx, thread.ID)
}

// waitForRun опрашивает статус run с фиксированным интервалом до завершения.
// Отмену run не поддерживаем: при истечении таймаута просто уходим по ctx.
func (c *Client) waitForRun(ctx context.Context, threadID, runID string) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		run, err := c.client.Beta.Threads.Runs.Get(ctx, threadID, runID)
		if err != nil {
			return fmt.Errorf("poll run: %w", err)
		}

		switch run.Status {
		case openai.RunStatusCompleted:
			return nil
		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired, openai.RunStatusIncomplete:
			c.logger.Error("Assistant run finished with error",
				zap.String("run_id", runID),
				zap.String("status", string(run.Status)))
			return fmt.Errorf("run finished with status %s", run.Status)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("wait for run: %w", ctx.Err())
		}
	}
}

// latestReply читает самое свежее сообщение ассистента из thread
func (c *Client) latestReply(ctx context.Context, threadID string) (string, error) {
	page, err := c.client.Beta.Threads.Messages.List(ctx, threadID, openai.BetaThreadMessageListParams{
		Order: openai.BetaThreadMessageListParamsOrderDesc,
		Limit: openai.Int(1),
	})
	if err != nil {
		return "", fmt.Errorf("list thread messages: %w", err)
	}

	if len(page.Data) == 0 {
		return "", fmt.Errorf("thread has no messages")
	}

	for _, block := range page.Data[0].Content {
		if block.Type == "text" {
			return block.Text.Value, nil
		}
	}
	return "", fmt.Errorf("assistant reply has no text content")
}
