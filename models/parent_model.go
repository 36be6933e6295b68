package models

import "time"

type Parent struct {
	ParentID    uint   `gorm:"primaryKey" json:"parentId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Email       string `gorm:"size:255;not null;unique" json:"email"`
	PhoneNumber string `gorm:"size:50" json:"phoneNumber"`
	Password    string `gorm:"not null" json:"-"`

	Children []Child `gorm:"foreignKey:ParentID" json:"children,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
