package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// BoolString carries the raw `published` value from a request body.
// The original wire contract accepts a JSON boolean or the exact string
// literals "true"/"false"; any other spelling ("TRUE", 1, ...) is
// stringified and rejected by the boolstring validation rule.
type BoolString string

func (b *BoolString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*b = BoolString(t)
	case bool:
		*b = BoolString(strconv.FormatBool(t))
	case nil:
		*b = ""
	default:
		*b = BoolString(fmt.Sprint(t))
	}
	return nil
}

// Bool reports whether the value is the literal "true".
func (b BoolString) Bool() bool {
	return b == "true"
}

// PostInput is the request body for creating or editing a post.
type PostInput struct {
	Title     string     `json:"title" validate:"required,min=3,max=160"`
	Content   string     `json:"content" validate:"required,min=3"`
	Author    string     `json:"author" validate:"required,min=3,max=64"`
	Published BoolString `json:"published" validate:"boolstring"`
}

// Messages maps each field to its wire-format validation message.
func (PostInput) Messages() map[string]string {
	return map[string]string{
		"title":     "Post title field must contain between 3 and 160 characters.",
		"content":   "Post content field must contain at least 3 characters.",
		"author":    "Post author field must contain between 3 and 64 characters.",
		"published": "Post publish value must be either true or false",
	}
}

// CommentInput is the request body for creating or editing a comment.
type CommentInput struct {
	Author       string `json:"author" validate:"required,min=3,max=64"`
	Content      string `json:"content" validate:"required,min=3,max=320"`
	AvatarColour string `json:"avatar_colour" validate:"omitempty,max=8"`
}

func (CommentInput) Messages() map[string]string {
	return map[string]string{
		"author":        "Comment author field must contain between 3 and 64 characters.",
		"content":       "Comment content field must contain between 3 and 320 characters.",
		"avatar_colour": "Avatar colour field must contain at most 8 characters.",
	}
}

// LoginInput is the request body for the login endpoint.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=1,max=16"`
	Password string `json:"password" validate:"required,min=1,max=16"`
}

func (LoginInput) Messages() map[string]string {
	return map[string]string{
		"username": "Username field must contain between 1 and 16 characters.",
		"password": "Password field must contain between 1 and 16 characters.",
	}
}
