package model

type Client struct {
	ClientID int    `json:"client_id" bson:"_id" validate:"omitempty,min=1"`
	Name     string `json:"name" bson:"name" validate:"required,min=1,max=100"`
}
