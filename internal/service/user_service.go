package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"user-service/internal/entity"
	"user-service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserService provides user CRUD operations on top of the repository and
// publishes a change event for each successful mutation when a Kafka
// writer is configured.
type UserService struct {
	repo        *repository.UserRepository
	kafkaWriter *kafka.Writer
}

// NewUserService creates a new instance of UserService. A nil kafkaWriter
// disables event publishing.
func NewUserService(repo *repository.UserRepository, kafkaWriter *kafka.Writer) *UserService {
	return &UserService{repo: repo, kafkaWriter: kafkaWriter}
}

// ListUsers returns one page of users in insertion order.
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) []entity.User {
	return s.repo.List(ctx, page, pageSize)
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	return s.repo.Get(ctx, id)
}

// CreateUser adds a new user to the store.
func (s *UserService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := s.repo.Add(ctx, *user); err != nil {
		logger.Error().Err(err).Msgf("Error creating user %d", user.ID)
		return nil, err
	}

	s.publishUserEvent(ctx, *user, "created")
	return user, nil
}

// UpdateUser replaces the record with the given ID.
func (s *UserService) UpdateUser(ctx context.Context, id int, user *entity.User) error {
	if err := s.repo.Update(ctx, id, *user); err != nil {
		return err
	}

	user.ID = id
	s.publishUserEvent(ctx, *user, "updated")
	return nil
}

// DeleteUser removes the record(s) with the given ID.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishUserEvent(ctx, *user, "deleted")
	return nil
}

// UserCount returns the number of stored users.
func (s *UserService) UserCount(ctx context.Context) int {
	return s.repo.Len(ctx)
}

// publishUserEvent sends a user event to the topic. Failures are logged
// and never fail the originating request.
func (s *UserService) publishUserEvent(ctx context.Context, user entity.User, action string) {
	if s.kafkaWriter == nil {
		return
	}

	event := entity.UserEvent{Action: action, User: user, Time: time.Now()}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("Error marshalling user event")
		return
	}

	// user-created-1 or user-updated-1
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("user-%s-%d", action, user.ID)),
		Value: payload,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing user %s event for user %d", action, user.ID)
	}
}
