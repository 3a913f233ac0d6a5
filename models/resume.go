package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultLayout is the layout stored when the caller does not pick one.
const DefaultLayout = "simple"

// Resume is the persisted resume document.
type Resume struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    *string            `bson:"userId" json:"userId"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Sections  interface{}        `bson:"sections,omitempty" json:"sections,omitempty"` // e.g. summary, experience[], skills[]
	Layout    string             `bson:"layout" json:"layout"`
	Metadata  interface{}        `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ResumeInput is the body accepted by the save endpoint. Unknown fields are ignored.
// Sections and metadata are stored as the caller sent them, whatever their JSON type.
type ResumeInput struct {
	UserID   *string     `json:"userId"`
	Name     string      `json:"name"`
	Role     string      `json:"role"`
	Sections interface{} `json:"sections"`
	Layout   string      `json:"layout"`
	Metadata interface{} `json:"metadata"`
}

// NewResume builds a Resume from caller input with schema defaults applied.
// Timestamps and the id are left for the store to assign.
func NewResume(in ResumeInput) *Resume {
	layout := in.Layout
	if layout == "" {
		layout = DefaultLayout
	}
	return &Resume{
		UserID:   in.UserID,
		Name:     in.Name,
		Role:     in.Role,
		Sections: in.Sections,
		Layout:   layout,
		Metadata: in.Metadata,
	}
}
