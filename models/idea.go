// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Idea is the primary domain entity of the brainstorming service.
// Ideas are created by authenticated users and readable by everyone.
type Idea struct {
	// ID is the unique identifier of the idea document.
	ID string `json:"id" bson:"_id"`

	// OwnerID references the user that created the idea.
	OwnerID string `json:"owner_id" bson:"owner_id"`

	// Title is the short headline of the idea. Required.
	Title string `json:"title" bson:"title"`

	// Description is the free-form body of the idea.
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Tags are optional labels used for discovery.
	Tags []string `json:"tags,omitempty" bson:"tags,omitempty"`

	// ImageURLs holds hosted locations of images attached to the idea,
	// produced by the image-host adapter.
	ImageURLs []string `json:"image_urls,omitempty" bson:"image_urls,omitempty"`

	// CreatedAt is the timestamp when the idea was created.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// IdeaUpdate carries a partial update for a single idea.
// Only non-nil fields are applied.
type IdeaUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	ImageURLs   *[]string `json:"image_urls,omitempty"`
}
