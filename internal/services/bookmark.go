package services

//go:generate mockgen -source=bookmark.go -destination=bookmark_mock.go -package=services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
	"github.com/segmentio/kafka-go"
)

// BookmarkWriter defines bookmark inserts and deletes.
type BookmarkWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, description, url, imageURL string) error // Inserts a bookmark
	DeleteByURL(ctx context.Context, userID uuid.UUID, url string) (int64, error)               // Deletes all user bookmarks with url
}

// BookmarkReader defines bookmark reads.
type BookmarkReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BookmarkDB, error) // Returns all user bookmarks
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BookmarkService handles bookmark operations and Kafka publishing.
type BookmarkService struct {
	writeRepo   BookmarkWriter
	readRepo    BookmarkReader
	kafkaWriter KafkaWriter
}

// NewBookmarkService creates a new BookmarkService. kafkaWriter may be nil.
func NewBookmarkService(
	writeRepo BookmarkWriter,
	readRepo BookmarkReader,
	kafkaWriter KafkaWriter,
) *BookmarkService {
	return &BookmarkService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a bookmark event to Kafka.
func (s *BookmarkService) publishEvent(ctx context.Context, userID uuid.UUID, operation, url string) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "operation", operation)
		return
	}

	event := models.BookmarkEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		Operation: operation,
		URL:       url,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal bookmark event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish bookmark event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Bookmark event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

// Add saves a bookmark for the user and publishes the event.
func (s *BookmarkService) Add(ctx context.Context, userID uuid.UUID, title, description, url, imageURL string) error {
	if err := s.writeRepo.Save(ctx, userID, title, description, url, imageURL); err != nil {
		logger.Log.Errorw("failed to save bookmark", "userID", userID, "url", url, "error", err)
		return fmt.Errorf("save bookmark: %w", err)
	}

	s.publishEvent(ctx, userID, models.BookmarkAdded, url)
	return nil
}

// List returns the user's bookmarks; an empty result is an empty, non-nil slice.
func (s *BookmarkService) List(ctx context.Context, userID uuid.UUID) ([]models.Bookmark, error) {
	rows, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarks", "userID", userID, "error", err)
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	bookmarks := make([]models.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmarks = append(bookmarks, row.ToBookmark())
	}
	return bookmarks, nil
}

// Remove deletes every bookmark of the user with the given url.
// Removing a url that was never saved is not an error.
func (s *BookmarkService) Remove(ctx context.Context, userID uuid.UUID, url string) error {
	deleted, err := s.writeRepo.DeleteByURL(ctx, userID, url)
	if err != nil {
		logger.Log.Errorw("failed to remove bookmark", "userID", userID, "url", url, "error", err)
		return fmt.Errorf("remove bookmark: %w", err)
	}

	if deleted > 0 {
		s.publishEvent(ctx, userID, models.BookmarkRemoved, url)
	}
	return nil
}
