package testutils

import (
	"time"

	"cx-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// ClientFactory provides methods to create test CxClient data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test CxClient with default values
func (f *ClientFactory) Create() *models.CxClient {
	id := uuid.New()
	return &models.CxClient{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Acme Corp " + id.String()[:6],
		Email:   "contact@acme.test",
		Company: "Acme Corp",
		Phone:   "+1-555-0100",
	}
}

// WithName sets a custom name for the client
func (f *ClientFactory) WithName(name string) *models.CxClient {
	client := f.Create()
	client.Name = name
	return client
}

// UserFactory provides methods to create test CxUser data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test CxUser with default values. Usernames are made unique
// with a UUID fragment to avoid conflicts on the unique index.
func (f *UserFactory) Create() *models.CxUser {
	id := uuid.New()
	return &models.CxUser{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:  "agent-" + id.String()[:8],
		FirstName: "Dana",
		LastName:  "Reeves",
		Email:     "dana.reeves@crm.test",
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.CxUser {
	user := f.Create()
	user.Username = username
	return user
}

// StageFactory provides methods to create test PipelineStage data
type StageFactory struct{}

// NewStageFactory creates a new StageFactory
func NewStageFactory() *StageFactory {
	return &StageFactory{}
}

// Create creates a test PipelineStage with default values
func (f *StageFactory) Create() *models.PipelineStage {
	id := uuid.New()
	return &models.PipelineStage{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Stage " + id.String()[:6],
		Description: "A test pipeline stage",
		SortOrder:   0,
		IsDefault:   false,
	}
}

// WithName sets a custom name for the stage
func (f *StageFactory) WithName(name string) *models.PipelineStage {
	stage := f.Create()
	stage.Name = name
	return stage
}

// WithOrder sets the sort order for the stage
func (f *StageFactory) WithOrder(order int) *models.PipelineStage {
	stage := f.Create()
	stage.SortOrder = order
	return stage
}

// WithSLA sets the expected duration in days for the stage
func (f *StageFactory) WithSLA(days int) *models.PipelineStage {
	stage := f.Create()
	stage.ExpectedDurationDays = &days
	return stage
}

// PipelineFactory provides methods to create test CxPipeline data
type PipelineFactory struct{}

// NewPipelineFactory creates a new PipelineFactory
func NewPipelineFactory() *PipelineFactory {
	return &PipelineFactory{}
}

// Create creates a test CxPipeline with default values. ClientID must be
// overridden with a persisted client before saving.
func (f *PipelineFactory) Create() *models.CxPipeline {
	return &models.CxPipeline{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClientID: uuid.New(),
		Status:   models.LegacyStatusLead,
		Notes:    "Test pipeline notes",
	}
}

// WithClient sets the client ID for the pipeline
func (f *PipelineFactory) WithClient(clientID uuid.UUID) *models.CxPipeline {
	pipeline := f.Create()
	pipeline.ClientID = clientID
	return pipeline
}

// WithStage assigns a stage and a stage entry time to the pipeline
func (f *PipelineFactory) WithStage(clientID, stageID uuid.UUID, since time.Time) *models.CxPipeline {
	pipeline := f.Create()
	pipeline.ClientID = clientID
	pipeline.StageID = &stageID
	pipeline.StageStartDate = &since
	return pipeline
}

// WithStatus sets the legacy status for the pipeline
func (f *PipelineFactory) WithStatus(clientID uuid.UUID, status models.LegacyStatus) *models.CxPipeline {
	pipeline := f.Create()
	pipeline.ClientID = clientID
	pipeline.Status = status
	return pipeline
}
