package repositories

import (
	"sort"

	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BadgerPostRepository implements PostRepository using BadgerDB.
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository.
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create persists a new post. Title uniqueness is enforced inside the
// transaction via the title index, so a concurrent create with the same
// title cannot slip through.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(postTitleKey(post.Title))
		if err == nil {
			return ErrDuplicateTitle
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if post.ID.IsZero() {
			post.ID = primitive.NewObjectID()
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		if err := txn.Set(postKey(post.ID), data); err != nil {
			return err
		}
		return txn.Set(postTitleKey(post.Title), []byte(post.ID.Hex()))
	})
}

// GetByID retrieves a post by ID.
func (r *BadgerPostRepository) GetByID(id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, postKey(id), &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts, newest first.
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreateDate.After(posts[j].CreateDate)
	})
	return posts, nil
}

// Update replaces an existing post. If the title changed, uniqueness is
// re-checked against other posts and the title index is moved.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var existing models.Post
		if err := getEntity(txn, postKey(post.ID), &existing); err != nil {
			return err
		}

		if existing.Title != post.Title {
			if _, err := txn.Get(postTitleKey(post.Title)); err == nil {
				return ErrDuplicateTitle
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(postTitleKey(existing.Title)); err != nil {
				return err
			}
			if err := txn.Set(postTitleKey(post.Title), []byte(post.ID.Hex())); err != nil {
				return err
			}
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// Delete removes a post by ID along with its title index entry. Comments
// are left in place; there is no cascade delete.
func (r *BadgerPostRepository) Delete(id primitive.ObjectID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var existing models.Post
		if err := getEntity(txn, postKey(id), &existing); err != nil {
			return err
		}
		if err := txn.Delete(postTitleKey(existing.Title)); err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
}

// AdjustLikes atomically applies delta to the post's like count. The
// floor check runs inside the same transaction as the write, so two
// concurrent unlikes cannot drive the count negative.
func (r *BadgerPostRepository) AdjustLikes(id primitive.ObjectID, delta int) (*models.Post, error) {
	var post models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getEntity(txn, postKey(id), &post); err != nil {
			return err
		}
		if post.Likes+delta < 0 {
			return ErrNoLikes
		}
		post.Likes += delta

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SetPublishedAll flips every post whose published flag differs from the
// target value and reports how many were modified.
func (r *BadgerPostRepository) SetPublishedAll(published bool) (int, error) {
	modified := 0
	err := r.db.Update(func(txn *badger.Txn) error {
		type pending struct {
			key  []byte
			data []byte
		}
		var updates []pending

		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				it.Close()
				return err
			}
			if post.Published == published {
				continue
			}
			post.Published = published
			data, err := marshalEntity(&post)
			if err != nil {
				it.Close()
				return err
			}
			updates = append(updates, pending{key: it.Item().KeyCopy(nil), data: data})
		}
		it.Close()

		for _, u := range updates {
			if err := txn.Set(u.key, u.data); err != nil {
				return err
			}
		}
		modified = len(updates)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return modified, nil
}

// getEntity loads and unmarshals a single record, mapping a missing key
// to ErrNotFound.
func getEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}
