package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID   string             `bson:"propertyId" json:"propertyId"`
	PropertyName string             `bson:"propertyName" json:"propertyName"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	UserName     string             `bson:"userName" json:"userName"`
	Rating       int                `bson:"rating" json:"rating"`
	Comment      string             `bson:"comment" json:"comment"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ReviewInput struct {
	PropertyID string `json:"propertyId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required"`
}
