package models

import "time"

// LessonCompletion marks that a child finished a lesson. One row per (child, lesson).
type LessonCompletion struct {
	CompleteID uint `gorm:"primaryKey" json:"completeId"`
	ChildID    uint `gorm:"not null;uniqueIndex:idx_completion_child_lesson" json:"childId"`
	LessonID   uint `gorm:"not null;uniqueIndex:idx_completion_child_lesson" json:"lessonId"`

	Lesson *Lesson `gorm:"foreignKey:LessonID" json:"lesson,omitempty"`

	CompletedAt time.Time `gorm:"autoCreateTime" json:"completedAt"`
}

type LessonProgress struct {
	Subject          Subject `json:"subject"`
	TotalLessons     int64   `json:"totalLessons"`
	CompletedLessons int64   `json:"completedLessons"`
}
