// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/modelfoundry/foundry/ent/agentlog"
	"github.com/modelfoundry/foundry/ent/dataset"
	"github.com/modelfoundry/foundry/ent/message"
	"github.com/modelfoundry/foundry/ent/model"
	"github.com/modelfoundry/foundry/ent/project"
	"github.com/modelfoundry/foundry/ent/schema"
	"github.com/modelfoundry/foundry/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentlogFields := schema.AgentLog{}.Fields()
	_ = agentlogFields
	// agentlogDescCreatedAt is the schema descriptor for created_at field.
	agentlogDescCreatedAt := agentlogFields[5].Descriptor()
	// agentlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentlog.DefaultCreatedAt = agentlogDescCreatedAt.Default.(func() time.Time)
	datasetFields := schema.Dataset{}.Fields()
	_ = datasetFields
	// datasetDescSource is the schema descriptor for source field.
	datasetDescSource := datasetFields[5].Descriptor()
	// dataset.DefaultSource holds the default value on creation for the source field.
	dataset.DefaultSource = datasetDescSource.Default.(string)
	// datasetDescCreatedAt is the schema descriptor for created_at field.
	datasetDescCreatedAt := datasetFields[6].Descriptor()
	// dataset.DefaultCreatedAt holds the default value on creation for the created_at field.
	dataset.DefaultCreatedAt = datasetDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[4].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	modelFields := schema.Model{}.Fields()
	_ = modelFields
	// modelDescCreatedAt is the schema descriptor for created_at field.
	modelDescCreatedAt := modelFields[7].Descriptor()
	// model.DefaultCreatedAt holds the default value on creation for the created_at field.
	model.DefaultCreatedAt = modelDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[9].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[10].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[4].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
