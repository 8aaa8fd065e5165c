package stream_test

import (
	"reflect"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/canopy/stream"
)

func TestConvertStreamKey(t *testing.T) {
	streamKey := map[string]events.DynamoDBAttributeValue{
		"pk": events.NewStringAttribute("/root#00"),
		"n":  events.NewNumberAttribute("42"),
	}

	key := stream.ConvertStreamKey(streamKey)

	if v, ok := key["pk"].(*types.AttributeValueMemberS); !ok || v.Value != "/root#00" {
		t.Error("expected pk to be '/root#00'")
	}
	if v, ok := key["n"].(*types.AttributeValueMemberN); !ok || v.Value != "42" {
		t.Error("expected n to be '42'")
	}
}

func TestConvertStreamKey_Empty(t *testing.T) {
	key := stream.ConvertStreamKey(map[string]events.DynamoDBAttributeValue{})
	if key == nil {
		t.Fatal("expected non-nil map for empty input")
	}
	if len(key) != 0 {
		t.Errorf("expected empty map, got %d keys", len(key))
	}
}

func TestConvertAttributeValue_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		av   types.AttributeValue
	}{
		{"string", &types.AttributeValueMemberS{Value: "childdata 1"}},
		{"number", &types.AttributeValueMemberN{Value: "3.14"}},
		{"binary", &types.AttributeValueMemberB{Value: []byte{1, 2, 3}}},
		{"bool", &types.AttributeValueMemberBOOL{Value: true}},
		{"null", &types.AttributeValueMemberNULL{Value: true}},
		{"string set", &types.AttributeValueMemberSS{Value: []string{"a", "b"}}},
		{"number set", &types.AttributeValueMemberNS{Value: []string{"1", "2"}}},
		{"binary set", &types.AttributeValueMemberBS{Value: [][]byte{{1}, {2}}}},
		{"list", &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: "x"},
			&types.AttributeValueMemberN{Value: "1"},
		}}},
		{"map", &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"port":    &types.AttributeValueMemberN{Value: "8080"},
			"enabled": &types.AttributeValueMemberBOOL{Value: true},
			"nested": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"k": &types.AttributeValueMemberS{Value: "v"},
			}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stream.ConvertStreamAttribute(stream.ConvertAttributeValue(tt.av))
			if !reflect.DeepEqual(result, tt.av) {
				t.Errorf("expected %#v, got %#v", tt.av, result)
			}
		})
	}
}

func TestConvertAttributeValue_NilIsNull(t *testing.T) {
	v := stream.ConvertAttributeValue(nil)
	if v.DataType() != events.DataTypeNull {
		t.Errorf("expected NULL, got %v", v.DataType())
	}
}
