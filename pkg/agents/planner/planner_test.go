package planner

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/llm"
	"github.com/modelfoundry/foundry/pkg/models"
)

type fakeStore struct {
	user       *models.User
	messages   []*models.Message
	project    *models.Project
	createErrs []error // popped per CreateProject call; nil means success
	logs       []string
	warnings   []string
}

func (s *fakeStore) UpsertUser(ctx context.Context, externalAuthID, email, displayName string) (*models.User, error) {
	s.user = &models.User{ID: "u-1", ExternalAuthID: externalAuthID, Email: email, DisplayName: displayName}
	return s.user, nil
}

func (s *fakeStore) WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error) {
	m := &models.Message{ID: "m", UserID: userID, Role: role, Content: content}
	s.messages = append(s.messages, m)
	return m, nil
}

func (s *fakeStore) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	if len(s.createErrs) > 0 {
		err := s.createErrs[0]
		s.createErrs = s.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	s.project = p
	return p, nil
}

func (s *fakeStore) AppendLog(ctx context.Context, projectID string, agent models.AgentName, level models.LogLevel, msg string) error {
	s.logs = append(s.logs, msg)
	if level == models.LogWarning {
		s.warnings = append(s.warnings, msg)
	}
	return nil
}

// fakeLLM replies with each canned response in turn.
type fakeLLM struct {
	replies []string
	err     error
	calls   [][]llm.ChatMessage
}

func (f *fakeLLM) Complete(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}

const validPlanJSON = `{"name": "Cats vs Dogs", "search_keywords": ["cats", "dogs"], "max_dataset_size_gb": 5}`

func newTestAgent(st *fakeStore, l *fakeLLM) *Agent {
	return New(st, l, slog.New(slog.DiscardHandler))
}

func TestHandleMessage_CreatesProject(t *testing.T) {
	st := &fakeStore{}
	l := &fakeLLM{replies: []string{"```json\n" + validPlanJSON + "\n```"}}
	a := newTestAgent(st, l)

	result, err := a.HandleMessage(t.Context(), "ext-1", "u@example.com", "U", "build me a cats vs dogs classifier")
	require.NoError(t, err)

	require.NotNil(t, result.Project)
	assert.Equal(t, "Cats vs Dogs", result.Project.Name)
	assert.Equal(t, models.StatusPendingDataset, result.Project.Status)
	assert.Equal(t, "u-1", result.Project.UserID)
	assert.NotEmpty(t, result.Project.ID)
	assert.Contains(t, result.Reply, "Cats vs Dogs")

	planMeta, ok := result.Project.Metadata[models.MetaPlan].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "resnet18", planMeta["preferred_model"])
	assert.Equal(t, 5.0, planMeta["max_dataset_size_gb"])

	// Transcript: the user's utterance, then the plan summary.
	require.Len(t, st.messages, 2)
	assert.Equal(t, models.RoleUser, st.messages[0].Role)
	assert.Equal(t, models.RoleAssistant, st.messages[1].Role)
	assert.Equal(t, result.Reply, st.messages[1].Content)
}

func TestHandleMessage_UtteranceSizeLimitWins(t *testing.T) {
	st := &fakeStore{}
	l := &fakeLLM{replies: []string{validPlanJSON}}
	a := newTestAgent(st, l)

	result, err := a.HandleMessage(t.Context(), "ext-1", "", "", "cats vs dogs classifier, under 1 GB of data")
	require.NoError(t, err)

	planMeta := result.Project.Metadata[models.MetaPlan].(map[string]any)
	assert.Equal(t, 1.0, planMeta["max_dataset_size_gb"])
}

func TestHandleMessage_EmptyUtterance(t *testing.T) {
	a := newTestAgent(&fakeStore{}, &fakeLLM{})

	_, err := a.HandleMessage(t.Context(), "ext-1", "", "", "   ")
	require.Error(t, err)
	assert.Equal(t, flowerr.InputInvalid, flowerr.KindOf(err))
}

func TestHandleMessage_RetriesOnceThenSucceeds(t *testing.T) {
	st := &fakeStore{}
	l := &fakeLLM{replies: []string{"Sure! Here's a plan for you.", validPlanJSON}}
	a := newTestAgent(st, l)

	result, err := a.HandleMessage(t.Context(), "ext-1", "", "", "cats vs dogs")
	require.NoError(t, err)
	assert.NotNil(t, result.Project)

	// Second call carries the failed reply plus the retry instruction.
	require.Len(t, l.calls, 2)
	retryConvo := l.calls[1]
	assert.Greater(t, len(retryConvo), len(l.calls[0]))
	assert.Equal(t, models.RoleUser, retryConvo[len(retryConvo)-1].Role)
}

func TestHandleMessage_RetryExhaustedIsPlanInvalid(t *testing.T) {
	st := &fakeStore{}
	l := &fakeLLM{replies: []string{"no json here", "still no json"}}
	a := newTestAgent(st, l)

	result, err := a.HandleMessage(t.Context(), "ext-1", "", "", "do something vague")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, flowerr.PlanInvalid, flowerr.KindOf(err))
	assert.Len(t, l.calls, 2)

	// The apology lands in the transcript; no project is created.
	require.Len(t, st.messages, 2)
	assert.Equal(t, models.RoleAssistant, st.messages[1].Role)
	assert.Contains(t, st.messages[1].Content, "rephrase")
	assert.Nil(t, st.project)

	// The raw reply the model produced is preserved at warning level.
	require.NotEmpty(t, st.warnings)
	assert.Contains(t, st.warnings[0], "still no json")
}

func TestHandleMessage_LLMFailurePropagates(t *testing.T) {
	st := &fakeStore{}
	l := &fakeLLM{err: flowerr.New(flowerr.Dependency, "llm_complete", "sidecar unreachable")}
	a := newTestAgent(st, l)

	_, err := a.HandleMessage(t.Context(), "ext-1", "", "", "cats vs dogs")
	require.Error(t, err)
	assert.Equal(t, flowerr.Dependency, flowerr.KindOf(err))
}

func TestCreateProject_RetriesDuplicateID(t *testing.T) {
	st := &fakeStore{createErrs: []error{flowerr.New(flowerr.Conflict, "create_project", "duplicate key")}}
	l := &fakeLLM{replies: []string{validPlanJSON}}
	a := newTestAgent(st, l)

	result, err := a.HandleMessage(t.Context(), "ext-1", "", "", "cats vs dogs")
	require.NoError(t, err)
	require.NotNil(t, result.Project)
	assert.NotNil(t, st.project)
}
