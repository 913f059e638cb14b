package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelfoundry/foundry/ent"
	"github.com/modelfoundry/foundry/ent/message"
	"github.com/modelfoundry/foundry/ent/user"
	"github.com/modelfoundry/foundry/pkg/models"
)

// UpsertUser finds or creates the user for an external auth id. Email and
// display name are captured on first observation and filled in later if they
// arrive on a subsequent call.
func (s *Store) UpsertUser(ctx context.Context, externalAuthID, email, displayName string) (*models.User, error) {
	u, err := s.client.User.Query().
		Where(user.ExternalAuthIDEQ(externalAuthID)).
		Only(ctx)
	if err == nil {
		// Backfill contact fields observed for the first time.
		update := u.Update()
		changed := false
		if email != "" && u.Email == nil {
			update.SetEmail(email)
			changed = true
		}
		if displayName != "" && u.DisplayName == nil {
			update.SetDisplayName(displayName)
			changed = true
		}
		if changed {
			if u, err = update.Save(ctx); err != nil {
				return nil, classify("upsert_user", err)
			}
		}
		return toUser(u), nil
	}
	if !ent.IsNotFound(err) {
		return nil, classify("upsert_user", err)
	}

	builder := s.client.User.Create().
		SetID(uuid.New().String()).
		SetExternalAuthID(externalAuthID)
	if email != "" {
		builder.SetEmail(email)
	}
	if displayName != "" {
		builder.SetDisplayName(displayName)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// Lost a create race; the row exists now.
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.User.Query().
				Where(user.ExternalAuthIDEQ(externalAuthID)).
				Only(ctx)
			if qerr != nil {
				return nil, classify("upsert_user", qerr)
			}
			return toUser(existing), nil
		}
		return nil, classify("upsert_user", err)
	}
	return toUser(created), nil
}

// GetUser loads a user by id.
func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.client.User.Query().
		Where(user.IDEQ(userID)).
		Only(ctx)
	if err != nil {
		return nil, classify("get_user", err)
	}
	return toUser(u), nil
}

// UserByExternalID loads a user by external auth id without creating one.
func (s *Store) UserByExternalID(ctx context.Context, externalAuthID string) (*models.User, error) {
	u, err := s.client.User.Query().
		Where(user.ExternalAuthIDEQ(externalAuthID)).
		Only(ctx)
	if err != nil {
		return nil, classify("user_by_external_id", err)
	}
	return toUser(u), nil
}

// ListUsers returns users for the admin surface, newest first.
func (s *Store) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	query := s.client.User.Query().
		Order(ent.Desc(user.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, classify("list_users", err)
	}
	out := make([]*models.User, len(rows))
	for i, u := range rows {
		out[i] = toUser(u)
	}
	return out, nil
}

// WriteMessage appends one chat transcript entry.
func (s *Store) WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error) {
	created, err := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetRole(message.Role(role)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, classify("write_message", err)
	}
	return toMessage(created), nil
}

// MessagesByUser returns a user's transcript, oldest first.
func (s *Store) MessagesByUser(ctx context.Context, userID string, limit int) ([]*models.Message, error) {
	query := s.client.Message.Query().
		Where(message.UserIDEQ(userID)).
		Order(ent.Asc(message.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, classify("messages_by_user", err)
	}
	out := make([]*models.Message, len(rows))
	for i, m := range rows {
		out[i] = toMessage(m)
	}
	return out, nil
}
