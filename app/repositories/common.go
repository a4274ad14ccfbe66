package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no record matches the given identity.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateTitle is returned when a post title is already taken.
	ErrDuplicateTitle = errors.New("post title already taken")
	// ErrNoLikes is returned when a like decrement would drive the
	// count below zero.
	ErrNoLikes = errors.New("resource has no likes")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"
	UserKeyPrefix    = "user:"

	// Title uniqueness index: post_title:<title> -> post id hex
	PostTitleKeyPrefix = "post_title:"
)

func postKey(id primitive.ObjectID) []byte {
	return []byte(PostKeyPrefix + id.Hex())
}

func commentKey(id primitive.ObjectID) []byte {
	return []byte(CommentKeyPrefix + id.Hex())
}

func userKey(id primitive.ObjectID) []byte {
	return []byte(UserKeyPrefix + id.Hex())
}

func postTitleKey(title string) []byte {
	return []byte(PostTitleKeyPrefix + title)
}

// marshalEntity marshals an entity to JSON.
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity.
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
