package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a drill in the club's exercise catalog. Planner sessions do
// not embed these documents; they reference them by ID inside an encoded
// exercise list (see ExerciseItem).
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClubID      primitive.ObjectID `bson:"clubId" json:"clubId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"` // e.g. "rondo", "finishing"
	VideoURL    string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ExerciseItem is one entry of a session's encoded exercise list: a catalog
// reference plus per-occurrence ordering and a free-form note. Order values
// need not be unique or contiguous; display order is a stable sort by Order
// then original list position.
type ExerciseItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
	Note  string `json:"note,omitempty"`
}

// SortExerciseItems returns a copy of items in display order: ascending
// Order, original position preserved for equal values.
func SortExerciseItems(items []ExerciseItem) []ExerciseItem {
	out := make([]ExerciseItem, len(items))
	copy(out, items)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
