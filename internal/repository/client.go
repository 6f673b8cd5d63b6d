package repository

import (
	"cx-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository resolves CRM client identities owned by the auth domain
type ClientRepository struct {
	db *gorm.DB
}

// Ensure ClientRepository implements ClientRepositoryInterface
var _ ClientRepositoryInterface = (*ClientRepository)(nil)

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.CxClient, error) {
	var client models.CxClient
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
