package jobs

import (
	"log"

	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/gorm"
)

// PurgeOrphanedRecords deletes rows whose owner no longer exists, such as rows written
// before deletes cascaded or left by manual edits. It returns the number of rows removed.
func PurgeOrphanedRecords(db *gorm.DB) (int64, error) {
	log.Println("Running job: PurgeOrphanedRecords...")

	steps := []struct {
		model interface{}
		where string
	}{
		{&models.Module{}, "lesson_id NOT IN (SELECT lesson_id FROM lessons)"},
		{&models.Question{}, "test_id NOT IN (SELECT test_id FROM tests)"},
		{&models.MultipleChoice{}, "question_id NOT IN (SELECT question_id FROM questions)"},
		{&models.FillInTheBlank{}, "question_id NOT IN (SELECT question_id FROM questions)"},
		{&models.PhotoQuestion{}, "question_id NOT IN (SELECT question_id FROM questions)"},
		{&models.Option{}, "multiple_choice_id NOT IN (SELECT question_id FROM multiple_choices)"},
		{&models.TestResult{}, "child_id NOT IN (SELECT child_id FROM children) OR test_id NOT IN (SELECT test_id FROM tests)"},
		{&models.LessonCompletion{}, "child_id NOT IN (SELECT child_id FROM children) OR lesson_id NOT IN (SELECT lesson_id FROM lessons)"},
	}

	var purged int64
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, step := range steps {
			result := tx.Where(step.where).Delete(step.model)
			if result.Error != nil {
				return result.Error
			}
			purged += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		log.Printf("🔥 Failed to purge orphaned records: %v", err)
		return 0, err
	}

	if purged == 0 {
		log.Println("No orphaned records found.")
	} else {
		log.Printf("Purged %d orphaned record(s).", purged)
	}
	return purged, nil
}
