package stream

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"

	"github.com/jacentio/canopy/internal/segment"
	"github.com/jacentio/canopy/internal/shard"
	"github.com/jacentio/canopy/store"
)

// Image attribute names.
const (
	attrName   = "name"
	attrPath   = "path"
	attrNodeID = "node_id"
	attrValue  = "value"
	attrSeq    = "seq"
)

// Recorder turns namespace events into DynamoDB Streams records.
// Like the Store it listens to, a Recorder is not safe for concurrent use.
type Recorder[T any] struct {
	config  Config
	logger  *slog.Logger
	seq     int64
	records []events.DynamoDBEventRecord
}

// NewRecorder creates a new Recorder.
func NewRecorder[T any](config Config) *Recorder[T] {
	config.validate()
	return &Recorder[T]{
		config: config,
		logger: config.Logger,
	}
}

// Handler returns the store handler that feeds this Recorder.
func (r *Recorder[T]) Handler() store.Handler[T] {
	return r.Record
}

// Attach records an INSERT for every node already under path, parents first,
// and registers the Recorder on each of them so later changes anywhere in the
// subtree are captured.
func (r *Recorder[T]) Attach(s *store.Store[T], path string) error {
	levels, err := s.DumpFrom(path)
	if err != nil {
		return fmt.Errorf("attach recorder: %w", err)
	}
	for _, level := range levels {
		for _, n := range level.Nodes {
			r.Record(store.Event[T]{
				Kind:   store.NodeAdded,
				Name:   n.Name,
				Value:  n.Value,
				Path:   n.Path,
				NodeID: n.ID,
			})
			if err := s.AddListener(n.Path, r.Record); err != nil {
				return fmt.Errorf("attach recorder: %w", err)
			}
		}
	}
	return nil
}

// Record converts e into a stream record and appends it.
// Events whose value cannot be marshaled are logged and dropped.
func (r *Recorder[T]) Record(e store.Event[T]) {
	record, err := r.encode(e)
	if err != nil {
		r.logger.Error("failed to encode event",
			"path", e.Path,
			"kind", string(e.Kind),
			"error", err,
		)
		return
	}
	r.records = append(r.records, record)
}

// Event returns the records captured so far as a single stream event.
func (r *Recorder[T]) Event() events.DynamoDBEvent {
	return events.DynamoDBEvent{Records: slices.Clone(r.records)}
}

// Len returns the number of captured records.
func (r *Recorder[T]) Len() int {
	return len(r.records)
}

// Reset discards captured records. Sequence numbers keep increasing.
func (r *Recorder[T]) Reset() {
	r.records = nil
}

// encode builds the stream record for e.
func (r *Recorder[T]) encode(e store.Event[T]) (events.DynamoDBEventRecord, error) {
	av, err := attributevalue.Marshal(e.Value)
	if err != nil {
		return events.DynamoDBEventRecord{}, fmt.Errorf("marshal value: %w", err)
	}

	eventName, err := operationType(e.Kind)
	if err != nil {
		return events.DynamoDBEventRecord{}, err
	}

	r.seq++
	image := map[string]events.DynamoDBAttributeValue{
		attrName:   events.NewStringAttribute(e.Name),
		attrPath:   events.NewStringAttribute(e.Path),
		attrNodeID: events.NewStringAttribute(e.NodeID.String()),
		attrValue:  ConvertAttributeValue(av),
		attrSeq:    events.NewNumberAttribute(strconv.FormatInt(r.seq, 10)),
	}

	segments := segment.Split(e.Path)
	parentPath := segment.Join(segments[:max(len(segments)-1, 0)])

	change := events.DynamoDBStreamRecord{
		ApproximateCreationDateTime: events.SecondsEpochTime{Time: time.Now()},
		Keys: map[string]events.DynamoDBAttributeValue{
			"pk": events.NewStringAttribute(shard.ParentPK(parentPath, e.Name, r.config.NumShards)),
			"sk": events.NewStringAttribute(shard.SequenceKey(e.Path, uint64(r.seq))),
		},
		SequenceNumber: strconv.FormatInt(r.seq, 10),
		StreamViewType: string(events.DynamoDBStreamViewTypeNewAndOldImages),
	}
	if e.Kind == store.NodeRemoved {
		change.OldImage = image
	} else {
		change.NewImage = image
	}

	return events.DynamoDBEventRecord{
		EventID:      uuid.NewString(),
		EventName:    string(eventName),
		EventSource:  r.config.Source,
		EventVersion: "1.1",
		Change:       change,
	}, nil
}

// operationType maps an event kind to its stream operation.
func operationType(kind store.EventKind) (events.DynamoDBOperationType, error) {
	switch kind {
	case store.NodeAdded:
		return events.DynamoDBOperationTypeInsert, nil
	case store.NodeUpdated:
		return events.DynamoDBOperationTypeModify, nil
	case store.NodeRemoved:
		return events.DynamoDBOperationTypeRemove, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEventKind, kind)
	}
}
