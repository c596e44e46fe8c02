package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TravelPost is a single journal entry. VisitedLocation may be empty;
// ImageURL is either a blob-store locator or the configured placeholder.
type TravelPost struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	VisitedLocation []string           `bson:"visitedLocation" json:"visitedLocation"`
	IsFavourite     bool               `bson:"isFavourite" json:"isFavourite"`
	IsPublic        bool               `bson:"isPublic" json:"isPublic"`
	ImageURL        string             `bson:"imageUrl" json:"imageUrl"`
	VisitedDate     time.Time          `bson:"visitedDate" json:"visitedDate"`
	CreatedOn       time.Time          `bson:"createdOn" json:"createdOn"`
}
