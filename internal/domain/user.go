package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a person whose exercises are tracked. Usernames are not unique.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
}
