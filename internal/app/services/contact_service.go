package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecem/goodworks/internal/app/models/dto"
)

// ContactService handles contact form submissions. Messages are not
// persisted; they are logged with a reference id the sender can quote.
type ContactService struct {
	logger zerolog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(logger zerolog.Logger) *ContactService {
	return &ContactService{logger: logger}
}

// Submit records a contact message and returns its tracking reference
func (s *ContactService) Submit(_ context.Context, req dto.ContactRequest) dto.ContactResponse {
	reference := uuid.New().String()

	s.logger.Info().
		Str("reference", reference).
		Str("name", req.Name).
		Str("email", req.Email).
		Str("subject", req.Subject).
		Str("message", req.Message).
		Msg("Contact form submission received")

	return dto.ContactResponse{
		Message:   "Your message has been received",
		Reference: reference,
	}
}
