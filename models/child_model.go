package models

import (
	"time"

	"gorm.io/datatypes"
)

type Child struct {
	ChildID     uint           `gorm:"primaryKey" json:"childId"`
	ParentID    uint           `gorm:"not null;index" json:"parentId"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	DateOfBirth datatypes.Date `json:"dateOfBirth"`

	Parent *Parent `gorm:"foreignKey:ParentID" json:"parent,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ChildWithParent is the admin reporting row.
type ChildWithParent struct {
	ChildID     uint      `json:"childId"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Age         int       `json:"age"`
	ParentID    uint      `json:"parentId"`
	ParentName  string    `json:"parentName"`
	ParentEmail string    `json:"parentEmail"`
	ParentPhone string    `json:"parentPhone"`
}
