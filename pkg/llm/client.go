// Package llm wraps the gRPC connection to the LLM sidecar service. The
// planner is its only consumer.
package llm

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/modelfoundry/foundry/proto"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
)

// ChatMessage is one turn of the prompt.
type ChatMessage struct {
	Role    models.MessageRole
	Content string
}

// SystemMessage builds a system-role prompt turn.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: "system", Content: content}
}

// Client wraps the gRPC connection to the LLM service.
type Client struct {
	conn        *grpc.ClientConn
	client      pb.LLMServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
}

// NewClient creates a new LLM client. Model selection and sampling settings
// come from the environment.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	var temperature *float32
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temp32 := float32(temp)
			temperature = &temp32
		}
	}

	var maxTokens *int32
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 32); err == nil {
			max32 := int32(max)
			maxTokens = &max32
		}
	}

	return &Client{
		conn:        conn,
		client:      pb.NewLLMServiceClient(conn),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Complete sends the prompt and returns the model's reply text.
func (c *Client) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	pbMessages := make([]*pb.ChatMessage, len(messages))
	for i, msg := range messages {
		var role pb.ChatMessage_Role
		switch msg.Role {
		case "system":
			role = pb.ChatMessage_ROLE_SYSTEM
		case models.RoleUser:
			role = pb.ChatMessage_ROLE_USER
		case models.RoleAssistant:
			role = pb.ChatMessage_ROLE_ASSISTANT
		default:
			role = pb.ChatMessage_ROLE_USER
		}
		pbMessages[i] = &pb.ChatMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	resp, err := c.client.Complete(ctx, &pb.CompletionRequest{
		Messages:    pbMessages,
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", flowerr.Wrap(flowerr.Dependency, "llm_complete", err)
	}
	return resp.Content, nil
}
