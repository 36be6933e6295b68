package services

import (
	"errors"

	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/gorm"
)

const alreadyCompleted = "Lesson has already been marked as complete."

// CreateCompletion relies on the (child_id, lesson_id) unique index: a duplicate key
// is the "already completed" answer, so concurrent requests cannot both insert.
func CreateCompletion(db *gorm.DB, childID, lessonID uint) models.Response[*models.LessonCompletion] {
	if err := db.Select("child_id").First(&models.Child{}, childID).Error; err != nil {
		return storeFailure[*models.LessonCompletion]("Child", "Failed to mark lesson as complete.", err)
	}
	var lesson models.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return storeFailure[*models.LessonCompletion]("Lesson", "Failed to mark lesson as complete.", err)
	}

	completion := models.LessonCompletion{ChildID: childID, LessonID: lessonID}
	if err := db.Create(&completion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Failure[*models.LessonCompletion](alreadyCompleted, nil)
		}
		return models.Failure[*models.LessonCompletion]("Failed to mark lesson as complete.", err)
	}
	return models.Success("Lesson marked as complete successfully.", &completion)
}

func GetCompletedLessonsByChild(db *gorm.DB, childID uint) models.Response[[]models.LessonCompletion] {
	var completions []models.LessonCompletion
	err := db.Preload("Lesson").
		Where("child_id = ?", childID).
		Order("complete_id").
		Find(&completions).Error
	if err != nil {
		return models.Failure[[]models.LessonCompletion]("Failed to retrieve completed lessons.", err)
	}
	if len(completions) == 0 {
		return models.Failure[[]models.LessonCompletion]("No completed lessons found for this child.", nil)
	}
	return models.Success("Completed lessons retrieved successfully.", completions)
}

// GetLessonsBySubjectAndChild counts the subject's lessons and how many of them the child finished.
func GetLessonsBySubjectAndChild(db *gorm.DB, childID uint, subject models.Subject) models.Response[*models.LessonProgress] {
	progress := models.LessonProgress{Subject: subject}

	if err := db.Model(&models.Lesson{}).Where("subject = ?", subject).Count(&progress.TotalLessons).Error; err != nil {
		return models.Failure[*models.LessonProgress]("Failed to count lessons.", err)
	}

	err := db.Model(&models.LessonCompletion{}).
		Joins("JOIN lessons ON lessons.lesson_id = lesson_completions.lesson_id").
		Where("lesson_completions.child_id = ? AND lessons.subject = ?", childID, subject).
		Count(&progress.CompletedLessons).Error
	if err != nil {
		return models.Failure[*models.LessonProgress]("Failed to count completed lessons.", err)
	}

	return models.Success("Lesson progress retrieved successfully.", &progress)
}
