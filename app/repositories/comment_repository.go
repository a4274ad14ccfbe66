package repositories

import (
	"sort"

	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB.
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository.
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create persists a new comment. The parent post reference is stored as
// given; its existence is not checked.
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if comment.ID.IsZero() {
			comment.ID = primitive.NewObjectID()
		}
		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(comment.ID), data)
	})
}

// GetByID retrieves a comment by ID.
func (r *BadgerCommentRepository) GetByID(id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, commentKey(id), &comment)
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves all comments belonging to a post, newest first.
func (r *BadgerCommentRepository) ListByPost(postID primitive.ObjectID) ([]*models.Comment, error) {
	return r.list(func(c *models.Comment) bool { return c.PostID == postID })
}

// ListAll retrieves every comment across all posts, newest first.
func (r *BadgerCommentRepository) ListAll() ([]*models.Comment, error) {
	return r.list(func(*models.Comment) bool { return true })
}

func (r *BadgerCommentRepository) list(match func(*models.Comment) bool) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			if match(&comment) {
				comments = append(comments, &comment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreateDate.After(comments[j].CreateDate)
	})
	return comments, nil
}

// Update replaces an existing comment.
func (r *BadgerCommentRepository) Update(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var existing models.Comment
		if err := getEntity(txn, commentKey(comment.ID), &existing); err != nil {
			return err
		}
		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(comment.ID), data)
	})
}

// Delete removes a comment by ID.
func (r *BadgerCommentRepository) Delete(id primitive.ObjectID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var existing models.Comment
		if err := getEntity(txn, commentKey(id), &existing); err != nil {
			return err
		}
		return txn.Delete(commentKey(id))
	})
}

// AdjustLikes atomically applies delta to the comment's like count,
// keeping the count at or above zero.
func (r *BadgerCommentRepository) AdjustLikes(id primitive.ObjectID, delta int) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getEntity(txn, commentKey(id), &comment); err != nil {
			return err
		}
		if comment.Likes+delta < 0 {
			return ErrNoLikes
		}
		comment.Likes += delta

		data, err := marshalEntity(&comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
