// Package planner turns a user's natural-language request into a validated
// project plan and creates the project in pending_dataset, handing it to the
// pipeline.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/llm"
	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/plan"
)

// Store is the persistence surface the planner needs.
type Store interface {
	UpsertUser(ctx context.Context, externalAuthID, email, displayName string) (*models.User, error)
	WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error)
	CreateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	AppendLog(ctx context.Context, projectID string, agent models.AgentName, level models.LogLevel, msg string) error
}

// LLM is the completion surface the planner needs.
type LLM interface {
	Complete(ctx context.Context, messages []llm.ChatMessage) (string, error)
}

// Agent is the planner.
type Agent struct {
	store  Store
	llm    LLM
	logger *slog.Logger
}

// Result is the planner's reply to one user message.
type Result struct {
	Reply   string          `json:"reply"`
	Project *models.Project `json:"project,omitempty"`
}

// New creates a planner agent.
func New(store Store, llmClient LLM, logger *slog.Logger) *Agent {
	return &Agent{
		store:  store,
		llm:    llmClient,
		logger: logger.With("agent", models.AgentPlanner),
	}
}

// HandleMessage processes one user utterance: extract a plan, create the
// project, and reply with a summary. The user row is created on first
// contact.
func (a *Agent) HandleMessage(ctx context.Context, externalUserID, email, displayName, utterance string) (*Result, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil, flowerr.New(flowerr.InputInvalid, "handle_message", "message is empty")
	}

	user, err := a.store.UpsertUser(ctx, externalUserID, email, displayName)
	if err != nil {
		return nil, err
	}

	if _, err := a.store.WriteMessage(ctx, user.ID, models.RoleUser, utterance); err != nil {
		return nil, err
	}

	p, err := a.extractPlan(ctx, utterance)
	if err != nil {
		a.logger.Warn("Plan extraction failed", "user_id", user.ID, "error", err)
		_ = a.store.AppendLog(ctx, "", models.AgentPlanner, models.LogError,
			fmt.Sprintf("plan extraction failed: %v", err))
		reply := "I couldn't turn that into a concrete ML project plan. Could you rephrase what you want the model to do?"
		_, _ = a.store.WriteMessage(ctx, user.ID, models.RoleAssistant, reply)
		return nil, err
	}

	// The deterministic parse of the utterance wins over the LLM's value.
	p.ApplySizeLimit(utterance)

	project, err := a.createProject(ctx, user.ID, p)
	if err != nil {
		return nil, err
	}

	_ = a.store.AppendLog(ctx, project.ID, models.AgentPlanner, models.LogInfo,
		fmt.Sprintf("project created from plan: task=%s model=%s keywords=%v size_cap=%.2fGB",
			p.TaskType, p.PreferredModel, p.SearchKeywords, p.MaxDatasetSizeGB))

	reply := planSummary(p)
	if _, err := a.store.WriteMessage(ctx, user.ID, models.RoleAssistant, reply); err != nil {
		a.logger.Warn("Failed to record assistant message", "user_id", user.ID, "error", err)
	}

	a.logger.Info("Project created", "project_id", project.ID, "user_id", user.ID, "name", p.Name)
	return &Result{Reply: reply, Project: project}, nil
}

// extractPlan calls the LLM and validates its JSON reply, retrying once with
// a stricter instruction before giving up with plan_invalid.
func (a *Agent) extractPlan(ctx context.Context, utterance string) (*plan.Plan, error) {
	messages := []llm.ChatMessage{
		llm.SystemMessage(systemPrompt),
		{Role: models.RoleUser, Content: utterance},
	}

	reply, err := a.llm.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	p, parseErr := plan.Parse([]byte(plan.StripFences(reply)))
	if parseErr == nil {
		return p, nil
	}
	a.logger.Warn("Plan reply failed validation, retrying", "error", parseErr)

	retryMessages := append(messages,
		llm.ChatMessage{Role: models.RoleAssistant, Content: reply},
		llm.ChatMessage{Role: models.RoleUser, Content: retryPrefix},
	)
	reply, err = a.llm.Complete(ctx, retryMessages)
	if err != nil {
		return nil, err
	}

	p, parseErr = plan.Parse([]byte(plan.StripFences(reply)))
	if parseErr != nil {
		// The raw reply is the only evidence of what the model produced.
		a.logger.Warn("Plan reply failed validation after retry", "error", parseErr, "raw_reply", reply)
		_ = a.store.AppendLog(ctx, "", models.AgentPlanner, models.LogWarning,
			fmt.Sprintf("unplannable LLM reply: %s", reply))
		return nil, flowerr.Wrap(flowerr.PlanInvalid, "extract_plan", parseErr)
	}
	return p, nil
}

// createProject inserts the project in pending_dataset. A duplicate id is
// retried once with a fresh id.
func (a *Agent) createProject(ctx context.Context, userID string, p *plan.Plan) (*models.Project, error) {
	for attempt := 0; attempt < 2; attempt++ {
		project, err := a.store.CreateProject(ctx, &models.Project{
			ID:             uuid.New().String(),
			UserID:         userID,
			Name:           p.Name,
			TaskType:       p.TaskType,
			Framework:      p.Framework,
			DatasetSource:  p.DatasetSource,
			SearchKeywords: p.SearchKeywords,
			Status:         models.StatusPendingDataset,
			Metadata: map[string]any{
				models.MetaPlan: map[string]any{
					"preferred_model":     p.PreferredModel,
					"target_metric":       p.TargetMetric,
					"target_value":        p.TargetValue,
					"max_dataset_size_gb": p.MaxDatasetSizeGB,
				},
			},
		})
		if err == nil {
			return project, nil
		}
		if flowerr.KindOf(err) != flowerr.Conflict {
			return nil, err
		}
	}
	return nil, flowerr.New(flowerr.Conflict, "create_project", "could not allocate a unique project id")
}

func planSummary(p *plan.Plan) string {
	return fmt.Sprintf(
		"I've set up your project %q: %s with %s on %s data (searching %s for %s). "+
			"Target: %.0f%% %s, dataset capped at %.2f GB. "+
			"Next, the dataset agent will find and stage a suitable dataset; you can watch progress in the project logs.",
		p.Name, p.TaskType, p.PreferredModel, p.DatasetSource,
		p.DatasetSource, strings.Join(p.SearchKeywords, ", "),
		p.TargetValue*100, p.TargetMetric, p.MaxDatasetSizeGB)
}
