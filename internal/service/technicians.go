package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/KodingMaster1/Molant/internal/listing"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
)

// Technician availability filter values
const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

// TechnicianListOptions narrows the technician list
type TechnicianListOptions struct {
	Availability string // "all", "available" or "unavailable"
	Search       string
}

// TechnicianStats are the header statistics for the technician list
type TechnicianStats struct {
	Total       int     `json:"total"`
	Available   int     `json:"available"`
	Unavailable int     `json:"unavailable"`
	AvgServices float64 `json:"avg_services"`
}

// TechnicianList is the technician list response
type TechnicianList struct {
	Technicians []models.Technician `json:"technicians"`
	Stats       TechnicianStats     `json:"stats"`
}

// TechnicianService implements technician business logic
type TechnicianService struct {
	repo repositories.TechnicianRepository
}

// NewTechnicianService creates a new technician service
func NewTechnicianService(repo repositories.TechnicianRepository) *TechnicianService {
	return &TechnicianService{repo: repo}
}

// List returns the filtered technicians together with full-set statistics
func (s *TechnicianService) List(ctx context.Context, opts TechnicianListOptions) (*TechnicianList, error) {
	techs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := TechnicianStats{Total: len(techs)}
	var totalServices int
	for _, t := range techs {
		if t.IsAvailable {
			stats.Available++
		} else {
			stats.Unavailable++
		}
		totalServices += len(t.ServiceIDs)
	}
	if len(techs) > 0 {
		stats.AvgServices = float64(totalServices) / float64(len(techs))
	}

	filtered := listing.Apply(techs, func(t models.Technician) bool {
		switch opts.Availability {
		case AvailabilityAvailable:
			return t.IsAvailable
		case AvailabilityUnavailable:
			return !t.IsAvailable
		default:
			return true
		}
	})
	filtered = listing.Search(filtered, opts.Search, func(t models.Technician) []string {
		return []string{t.Name, t.Contact}
	})

	return &TechnicianList{Technicians: filtered, Stats: stats}, nil
}

// Get returns one technician by ID
func (s *TechnicianService) Get(ctx context.Context, id uuid.UUID) (*models.Technician, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new technician
func (s *TechnicianService) Create(ctx context.Context, tech *models.Technician) error {
	if strings.TrimSpace(tech.Name) == "" {
		return NewValidationError("technician name is required")
	}
	if tech.ID == uuid.Nil {
		tech.ID = uuid.New()
	}
	return s.repo.Create(ctx, tech)
}

// Update validates and saves an existing technician
func (s *TechnicianService) Update(ctx context.Context, tech *models.Technician) error {
	if strings.TrimSpace(tech.Name) == "" {
		return NewValidationError("technician name is required")
	}
	if _, err := s.repo.GetByID(ctx, tech.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, tech)
}

// SetAvailability flips only the availability flag
func (s *TechnicianService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return s.repo.SetAvailability(ctx, id, available)
}

// Delete removes a technician by ID
func (s *TechnicianService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
