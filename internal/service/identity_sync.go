package service

import (
	"context"
	"log/slog"
	"strings"

	"wrenchbase/internal/middleware"
	"wrenchbase/internal/models"
	"wrenchbase/internal/observability"
	"wrenchbase/internal/repository"
)

// Identity provider event types this service reacts to.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// IdentityEmail is one email address entry in a provider payload.
type IdentityEmail struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// IdentityEventData is the nested user payload of a provider event.
type IdentityEventData struct {
	ID                    string          `json:"id"`
	FirstName             string          `json:"first_name"`
	LastName              string          `json:"last_name"`
	Username              string          `json:"username"`
	ImageURL              string          `json:"image_url"`
	EmailAddresses        []IdentityEmail `json:"email_addresses"`
	PrimaryEmailAddressID string          `json:"primary_email_address_id"`
}

// IdentityEvent is the signed event envelope delivered by the provider.
type IdentityEvent struct {
	Type string            `json:"type"`
	Data IdentityEventData `json:"data"`
}

// PrimaryEmail resolves the primary address, falling back to the first one.
func (d IdentityEventData) PrimaryEmail() string {
	for _, e := range d.EmailAddresses {
		if e.ID == d.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	if len(d.EmailAddresses) > 0 {
		return d.EmailAddresses[0].EmailAddress
	}
	return ""
}

// IdentitySyncService maps identity provider lifecycle events onto the local
// user table. Each event is processed at most once per delivery; the provider
// redelivers on failure, and every mutation keys on the external identity ID
// so redelivery converges instead of duplicating.
type IdentitySyncService struct {
	userRepo   repository.UserRepository
	adminEmail string
}

// NewIdentitySyncService builds the service. adminEmail is the configured
// address promoted to superAdmin at creation time; empty disables promotion.
func NewIdentitySyncService(userRepo repository.UserRepository, adminEmail string) *IdentitySyncService {
	return &IdentitySyncService{
		userRepo:   userRepo,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
	}
}

// Process applies one provider event. Validation failures return
// VALIDATION_ERROR app errors; storage failures return INTERNAL_ERROR.
// Unrecognized event types are acknowledged without action so the provider
// does not redeliver events this service never consumes.
func (s *IdentitySyncService) Process(ctx context.Context, evt IdentityEvent) error {
	if evt.Data.ID == "" {
		observability.WebhookEventsTotal.WithLabelValues(evt.Type, "rejected").Inc()
		return models.NewValidationError("Missing user ID in event payload")
	}

	var err error
	switch evt.Type {
	case EventUserCreated:
		err = s.handleCreated(ctx, evt.Data)
	case EventUserUpdated:
		err = s.handleUpdated(ctx, evt.Data)
	case EventUserDeleted:
		err = s.handleDeleted(ctx, evt.Data)
	default:
		middleware.Logger.Info("ignoring unhandled identity event",
			slog.String("type", evt.Type),
			slog.String("clerk_id", evt.Data.ID))
		observability.WebhookEventsTotal.WithLabelValues(evt.Type, "ignored").Inc()
		return nil
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	observability.WebhookEventsTotal.WithLabelValues(evt.Type, outcome).Inc()
	return err
}

func (s *IdentitySyncService) handleCreated(ctx context.Context, data IdentityEventData) error {
	user := &models.User{
		ClerkID:   data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.PrimaryEmail(),
		Username:  data.Username,
		Avatar:    data.ImageURL,
		Role:      models.UserRoleUser,
	}

	if s.adminEmail != "" && strings.EqualFold(user.Email, s.adminEmail) {
		user.Role = models.UserRoleSuperAdmin
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return err
	}

	middleware.Logger.Info("user synced from identity provider",
		slog.String("clerk_id", data.ID),
		slog.String("role", string(user.Role)))
	return nil
}

func (s *IdentitySyncService) handleUpdated(ctx context.Context, data IdentityEventData) error {
	user := &models.User{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.PrimaryEmail(),
		Username:  data.Username,
		Avatar:    data.ImageURL,
	}

	err := s.userRepo.UpdateProfile(ctx, data.ID, user)
	if err != nil {
		// An update racing ahead of its created event is not fatal: treat it
		// as an upsert and let the provider's ordering sort itself out.
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			user.ClerkID = data.ID
			user.Role = models.UserRoleUser
			return s.userRepo.Upsert(ctx, user)
		}
		return err
	}
	return nil
}

func (s *IdentitySyncService) handleDeleted(ctx context.Context, data IdentityEventData) error {
	return s.userRepo.DeleteByClerkID(ctx, data.ID)
}
