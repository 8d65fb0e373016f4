package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Opponent is an entry in a club's rival registry. The registry feeds the
// rival-name resolver and supplies the crest URL a PARTIDO day flag carries.
type Opponent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClubID    primitive.ObjectID `bson:"clubId" json:"clubId"`
	Name      string             `bson:"name" json:"name"` // unique per club
	CrestURL  string             `bson:"crestUrl,omitempty" json:"crestUrl,omitempty"`
	CrestKey  string             `bson:"crestKey,omitempty" json:"-"` // S3 object key backing CrestURL
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
