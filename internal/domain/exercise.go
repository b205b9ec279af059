package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged activity. Username is copied from the owning
// user when the exercise is created and is never kept in sync afterwards.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"` // minutes
	Date        string             `bson:"date" json:"date"`         // normalized, see NormalizeDate
	Day         time.Time          `bson:"day" json:"-"`             // UTC midnight of Date, used for range queries
	Username    string             `bson:"username,omitempty" json:"username,omitempty"`
}

// LogEntry is one display-formatted line of a user's log.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Log is a user's exercise history as returned to callers.
type Log struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"id"`
	Log      []LogEntry `json:"log"`
}
