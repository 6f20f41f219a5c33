package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// ClientListOptions narrows the client list
type ClientListOptions struct {
	Search string
}

// ClientStats are the header statistics for the client list, always
// computed over the full set regardless of active filters
type ClientStats struct {
	Total            int     `json:"total"`
	WithCreditTerms  int     `json:"with_credit_terms"`
	TotalCreditLimit float64 `json:"total_credit_limit"`
}

// ClientList is the client list response
type ClientList struct {
	Clients []models.Client `json:"clients"`
	Stats   ClientStats     `json:"stats"`
}

// ClientService implements client business logic
type ClientService struct {
	repo repositories.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(repo repositories.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// List returns the filtered clients together with full-set statistics
func (s *ClientService) List(ctx context.Context, opts ClientListOptions) (*ClientList, error) {
	clients, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := ClientStats{Total: len(clients)}
	for _, c := range clients {
		if c.CreditDays > 0 {
			stats.WithCreditTerms++
		}
		stats.TotalCreditLimit += c.CreditLimit
	}

	filtered := listing.Search(clients, opts.Search, func(c models.Client) []string {
		return []string{c.Name, c.Contact}
	})

	return &ClientList{Clients: filtered, Stats: stats}, nil
}

// Get returns one client by ID
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new client
func (s *ClientService) Create(ctx context.Context, client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return NewValidationError("client name is required")
	}
	if client.CreditLimit < 0 {
		return NewValidationError("credit limit cannot be negative")
	}
	if client.CreditDays < 0 {
		return NewValidationError("credit days cannot be negative")
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	return s.repo.Create(ctx, client)
}

// Update validates and saves an existing client
func (s *ClientService) Update(ctx context.Context, client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return NewValidationError("client name is required")
	}
	if client.CreditLimit < 0 {
		return NewValidationError("credit limit cannot be negative")
	}
	if client.CreditDays < 0 {
		return NewValidationError("credit days cannot be negative")
	}
	if _, err := s.repo.GetByID(ctx, client.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, client)
}

// Delete removes a client by ID
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
