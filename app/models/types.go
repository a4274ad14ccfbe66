package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a blog post.
type Post struct {
	ID         primitive.ObjectID `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Author     string             `json:"author"`
	CreateDate time.Time          `json:"create_date"`
	UpdateDate time.Time          `json:"update_date"`
	Published  bool               `json:"published"`
	Likes      int                `json:"likes"`
	Slug       string             `json:"slug"`
}

// Comment represents a comment on a blog post. The parent post reference
// is not checked for existence at write time and there is no cascade
// delete, so a comment can outlive its post.
type Comment struct {
	ID           primitive.ObjectID `json:"id"`
	PostID       primitive.ObjectID `json:"post"`
	Author       string             `json:"author"`
	Content      string             `json:"content"`
	CreateDate   time.Time          `json:"create_date"`
	Likes        int                `json:"likes"`
	AvatarColour string             `json:"avatar_colour"`
}

// DefaultAvatarColour is applied to comments created without an avatar
// colour accent.
const DefaultAvatarColour = "#FFB937"

// User is the single admin account. It is provisioned out of band via
// the seed-admin command; the API never returns it.
type User struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Password string             `json:"password"` // bcrypt hash
}
