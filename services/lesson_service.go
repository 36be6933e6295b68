package services

import (
	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/gorm"
)

type ModuleInput struct {
	Word     string
	PhotoURL *string
}

type NewLesson struct {
	LessonTitle string
	LessonType  models.LessonType
	Subject     models.Subject
	Modules     []ModuleInput
}

// LessonEdit describes an incremental edit. ExistingModules is the keep-list: nil leaves the
// lesson's modules alone, an empty slice removes them all.
type LessonEdit struct {
	LessonTitle     *string
	LessonType      *models.LessonType
	Subject         *models.Subject
	ExistingModules []models.Module
	NewModules      []ModuleInput
}

func GetLessons(db *gorm.DB) models.Response[[]models.Lesson] {
	lessons := []models.Lesson{}
	if err := db.Preload("Modules", orderModules).Order("lesson_id").Find(&lessons).Error; err != nil {
		return models.Failure[[]models.Lesson]("Error retrieving lessons", err)
	}
	return models.Success("Lessons retrieved successfully", lessons)
}

func GetLessonsBySubject(db *gorm.DB, subject models.Subject) models.Response[[]models.Lesson] {
	lessons := []models.Lesson{}
	err := db.Preload("Modules", orderModules).
		Where("subject = ?", subject).
		Order("lesson_id").
		Find(&lessons).Error
	if err != nil {
		return models.Failure[[]models.Lesson]("Error retrieving lessons", err)
	}
	return models.Success("Lessons retrieved successfully", lessons)
}

func GetLessonByID(db *gorm.DB, lessonID uint) models.Response[*models.Lesson] {
	var lesson models.Lesson
	if err := db.Preload("Modules", orderModules).First(&lesson, lessonID).Error; err != nil {
		return storeFailure[*models.Lesson]("Lesson", "Error retrieving lesson", err)
	}
	return models.Success("Lesson retrieved successfully", &lesson)
}

func CreateLesson(db *gorm.DB, in NewLesson) models.Response[*models.Lesson] {
	lesson := models.Lesson{
		LessonTitle: in.LessonTitle,
		LessonType:  in.LessonType,
		Subject:     in.Subject,
		Modules:     make([]models.Module, 0, len(in.Modules)),
	}
	for _, m := range in.Modules {
		lesson.Modules = append(lesson.Modules, models.Module{Word: m.Word, PhotoURL: m.PhotoURL})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&lesson).Error
	})
	if err != nil {
		return models.Failure[*models.Lesson]("Error creating lesson", err)
	}
	return models.Success("Lesson created successfully", &lesson)
}

// EditLesson applies the keep-list diff, module updates, new modules and scalar changes atomically.
func EditLesson(db *gorm.DB, lessonID uint, in LessonEdit) models.Response[*models.Lesson] {
	var lesson models.Lesson
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&lesson, lessonID).Error; err != nil {
			return err
		}

		if in.ExistingModules != nil {
			keep := make([]uint, 0, len(in.ExistingModules))
			for _, m := range in.ExistingModules {
				keep = append(keep, m.ModuleID)
			}

			stale := tx.Where("lesson_id = ?", lessonID)
			if len(keep) > 0 {
				stale = stale.Where("module_id NOT IN ?", keep)
			}
			if err := stale.Delete(&models.Module{}).Error; err != nil {
				return err
			}

			for _, m := range in.ExistingModules {
				fields := map[string]interface{}{"word": m.Word}
				if m.PhotoURL != nil {
					fields["photo_url"] = *m.PhotoURL
				}
				err := tx.Model(&models.Module{}).
					Where("module_id = ? AND lesson_id = ?", m.ModuleID, lessonID).
					Updates(fields).Error
				if err != nil {
					return err
				}
			}
		}

		if len(in.NewModules) > 0 {
			added := make([]models.Module, 0, len(in.NewModules))
			for _, m := range in.NewModules {
				added = append(added, models.Module{LessonID: lessonID, Word: m.Word, PhotoURL: m.PhotoURL})
			}
			if err := tx.Create(&added).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if in.LessonTitle != nil {
			updates["lesson_title"] = *in.LessonTitle
		}
		if in.LessonType != nil {
			updates["lesson_type"] = *in.LessonType
		}
		if in.Subject != nil {
			updates["subject"] = *in.Subject
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.Lesson{}).Where("lesson_id = ?", lessonID).Updates(updates).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Modules", orderModules).First(&lesson, lessonID).Error
	})
	if err != nil {
		return storeFailure[*models.Lesson]("Lesson", "Error updating lesson", err)
	}
	return models.Success("Lesson updated successfully", &lesson)
}

func DeleteLesson(db *gorm.DB, lessonID uint) models.Response[any] {
	err := db.Transaction(func(tx *gorm.DB) error {
		var lesson models.Lesson
		if err := tx.First(&lesson, lessonID).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&models.Module{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&models.LessonCompletion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&lesson).Error
	})
	if err != nil {
		return storeFailure[any]("Lesson", "Error deleting lesson", err)
	}
	return models.Success[any]("Lesson deleted successfully", nil)
}

func orderModules(db *gorm.DB) *gorm.DB {
	return db.Order("module_id")
}
