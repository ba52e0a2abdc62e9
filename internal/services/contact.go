package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/yungbote/agrinet/internal/data/repos"
	"github.com/yungbote/agrinet/internal/domain"
	"github.com/yungbote/agrinet/internal/platform/logger"
	"github.com/yungbote/agrinet/internal/platform/requestid"
)

var ErrInvalidContact = errors.New("invalid contact message")

type ContactInput struct {
	Name    string `form:"name" json:"name" validate:"required,max=120"`
	Email   string `form:"email" json:"email" validate:"required,email,max=254"`
	Message string `form:"message" json:"message" validate:"required,max=5000"`
}

// ContactObserver is notified of every stored message.
type ContactObserver interface {
	ObserveContactMessage()
}

type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
}

type contactService struct {
	db       *gorm.DB
	log      *logger.Logger
	repo     repos.ContactMessageRepo
	observer ContactObserver
	validate *validator.Validate
}

func NewContactService(db *gorm.DB, log *logger.Logger, repo repos.ContactMessageRepo, observer ContactObserver) ContactService {
	return &contactService{
		db:       db,
		log:      log.With("service", "ContactService"),
		repo:     repo,
		observer: observer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContact, describeValidation(err))
	}

	msg, err := s.repo.Create(ctx, s.db, &domain.ContactMessage{
		Name:      in.Name,
		Email:     strings.ToLower(in.Email),
		Message:   in.Message,
		RequestID: requestid.FromContext(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	s.log.Info("contact message stored", "message_id", msg.ID.String(), "email", msg.Email)
	if s.observer != nil {
		s.observer.ObserveContactMessage()
	}
	return msg, nil
}

// ContactProblem returns the client-facing part of a validation error.
func ContactProblem(err error) string {
	msg := err.Error()
	if _, after, ok := strings.Cut(msg, ErrInvalidContact.Error()+": "); ok {
		return after
	}
	return msg
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
