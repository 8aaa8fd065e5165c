package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/jacentio/canopy/store"
)

var (
	// ErrUnknownEventName is returned for records that are not INSERT, MODIFY or REMOVE.
	ErrUnknownEventName = errors.New("canopy: unknown stream event name")

	// ErrUnknownEventKind is returned when an event kind has no stream operation.
	ErrUnknownEventKind = errors.New("canopy: unknown event kind")

	// ErrMissingImage is returned when a record lacks the image its operation needs.
	ErrMissingImage = errors.New("canopy: record has no image")
)

// Handler replays stream records onto a Store.
type Handler[T any] struct {
	store   *store.Store[T]
	logger  *slog.Logger
	lastSeq int64
}

// NewHandler creates a new stream handler.
func NewHandler[T any](s *store.Store[T], logger *slog.Logger) *Handler[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler[T]{
		store:  s,
		logger: logger,
	}
}

// Apply replays each record of event in order:
// INSERT creates, MODIFY updates and REMOVE deletes the node at the record's path.
// Records whose sequence number was already applied are skipped, so a batch
// may be delivered more than once.
func (h *Handler[T]) Apply(ctx context.Context, event events.DynamoDBEvent) error {
	applied := 0
	for _, record := range event.Records {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := h.processRecord(record)
		if err != nil {
			h.logger.Error("failed to process record",
				"eventID", record.EventID,
				"error", err,
			)
			return err
		}
		if ok {
			applied++
		}
	}

	h.logger.Info("stream batch applied",
		"records", len(event.Records),
		"applied", applied,
	)
	return nil
}

// processRecord applies a single record. It reports false for skipped records.
func (h *Handler[T]) processRecord(record events.DynamoDBEventRecord) (bool, error) {
	var image map[string]events.DynamoDBAttributeValue
	switch events.DynamoDBOperationType(record.EventName) {
	case events.DynamoDBOperationTypeInsert, events.DynamoDBOperationTypeModify:
		image = record.Change.NewImage
	case events.DynamoDBOperationTypeRemove:
		image = record.Change.OldImage
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownEventName, record.EventName)
	}
	if len(image) == 0 {
		return false, fmt.Errorf("%w: %s", ErrMissingImage, record.EventName)
	}

	key, err := decodeKey(record.Change.Keys)
	if err != nil {
		return false, err
	}

	if seq := getNumberAttr(image, attrSeq); seq != 0 {
		if seq <= h.lastSeq {
			h.logger.Debug("skipping replayed record",
				"eventID", record.EventID,
				"pk", key.PK,
				"seq", seq,
			)
			return false, nil
		}
		h.lastSeq = seq
	}

	path := getStringAttr(image, attrPath)

	switch events.DynamoDBOperationType(record.EventName) {
	case events.DynamoDBOperationTypeInsert:
		value, err := decodeValue[T](image)
		if err != nil {
			return false, err
		}
		h.store.Create(path, value)

	case events.DynamoDBOperationTypeModify:
		value, err := decodeValue[T](image)
		if err != nil {
			return false, err
		}
		if err := h.store.Update(path, value); err != nil {
			return false, fmt.Errorf("update %s: %w", path, err)
		}

	case events.DynamoDBOperationTypeRemove:
		// A cascade removes descendants before their own records arrive.
		if err := h.store.Delete(path); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				return false, fmt.Errorf("delete %s: %w", path, err)
			}
			h.logger.Debug("node already removed", "path", path)
		}
	}

	h.logger.Debug("record applied",
		"eventName", record.EventName,
		"path", path,
		"pk", key.PK,
		"sk", key.SK,
	)
	return true, nil
}

// recordKey is the primary key a Recorder writes on each record.
type recordKey struct {
	PK string `dynamodbav:"pk"`
	SK string `dynamodbav:"sk"`
}

// decodeKey unmarshals the primary key of a stream record.
// Records without keys decode to the zero key.
func decodeKey(keys map[string]events.DynamoDBAttributeValue) (recordKey, error) {
	var key recordKey
	if err := attributevalue.UnmarshalMap(ConvertStreamKey(keys), &key); err != nil {
		return key, fmt.Errorf("unmarshal key: %w", err)
	}
	return key, nil
}

// decodeValue unmarshals the value attribute of a stream image.
func decodeValue[T any](image map[string]events.DynamoDBAttributeValue) (T, error) {
	var value T
	v, ok := image[attrValue]
	if !ok {
		return value, nil
	}
	if err := attributevalue.Unmarshal(ConvertStreamAttribute(v), &value); err != nil {
		return value, fmt.Errorf("unmarshal value: %w", err)
	}
	return value, nil
}
