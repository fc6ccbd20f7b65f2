package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bakery-shop/models"
	"bakery-shop/repositories"
)

// Notifier is told about every stored feedback submission.
type Notifier interface {
	NotifyFeedback(ctx context.Context, f models.FeedbackSubmission) error
}

type FeedbackService struct {
	repo     repositories.FeedbackRepository
	notifier Notifier
}

func NewFeedbackService(repo repositories.FeedbackRepository, notifier Notifier) *FeedbackService {
	return &FeedbackService{repo: repo, notifier: notifier}
}

// Record stores the submission and returns the confirmation shown to the
// shopper. The notification is sent in the background and its failure only
// gets logged. Emails are stored lowercased, so the one-submission-per-email
// rule ignores letter case.
func (s *FeedbackService) Record(ctx context.Context, req models.ContactRequest) (string, error) {
	submission := &models.FeedbackSubmission{
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Name:    strings.TrimSpace(req.Name),
		Message: strings.TrimSpace(req.Message),
	}
	if submission.Email == "" || submission.Name == "" || submission.Message == "" {
		return "", models.ErrMissingFields
	}
	if !strings.Contains(submission.Email, "@") {
		return "", models.ErrInvalidEmail
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return "", err
	}

	if s.notifier != nil {
		go func(f models.FeedbackSubmission) {
			if err := s.notifier.NotifyFeedback(context.Background(), f); err != nil {
				log.Printf("[feedback] notify for %s failed: %v", f.Email, err)
			}
		}(*submission)
	}

	return fmt.Sprintf("Thank you for reaching out, %s! We will get back to you soon.", submission.Name), nil
}

func (s *FeedbackService) List(ctx context.Context) ([]models.FeedbackSubmission, error) {
	return s.repo.List(ctx)
}
