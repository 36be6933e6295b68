package models

type Lesson struct {
	LessonID    uint       `gorm:"primaryKey" json:"lessonId"`
	LessonTitle string     `gorm:"size:255" json:"lessonTitle"`
	LessonType  LessonType `gorm:"size:50;not null" json:"lessonType"`
	Subject     Subject    `gorm:"size:50;not null;index" json:"subject"`

	Modules []Module `gorm:"foreignKey:LessonID" json:"modules"`
}

type Module struct {
	ModuleID uint    `gorm:"primaryKey" json:"moduleId"`
	LessonID uint    `gorm:"not null;index" json:"lessonId"`
	Word     string  `gorm:"size:255;not null" json:"word"`
	PhotoURL *string `gorm:"size:512" json:"photoUrl,omitempty"`
}
