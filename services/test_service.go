package services

import (
	"errors"
	"fmt"

	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OptionInput struct {
	OptionID  uint
	Text      string
	IsCorrect bool
}

// QuestionBody is the tagged union accepted on create and edit: exactly one of the
// sub-record fields is set and it must agree with QuestionType.
type QuestionBody struct {
	QuestionID     uint
	Text           string
	QuestionType   models.QuestionType
	MultipleChoice []OptionInput
	FillInTheBlank *string
	PhotoQuestion  *string
}

type NewTest struct {
	Subject  models.Subject
	TestType models.TestType
	Answer   string
	Question *QuestionBody
}

type TestEdit struct {
	Subject   *models.Subject
	TestType  *models.TestType
	Answer    *string
	Questions []QuestionBody
}

// Validate reports whether the populated sub-record matches the discriminator.
func (q QuestionBody) Validate() error {
	populated := 0
	var kind models.QuestionType
	if q.MultipleChoice != nil {
		populated++
		kind = models.QuestionTypeMultipleChoice
	}
	if q.FillInTheBlank != nil {
		populated++
		kind = models.QuestionTypeFillInTheBlank
	}
	if q.PhotoQuestion != nil {
		populated++
		kind = models.QuestionTypePhotoQuestion
	}

	switch {
	case !q.QuestionType.Valid():
		return fmt.Errorf("%w: unknown question type %q", ErrQuestionMismatch, q.QuestionType)
	case populated != 1:
		return fmt.Errorf("%w: %d sub-records supplied for %s", ErrQuestionMismatch, populated, q.QuestionType)
	case kind != q.QuestionType:
		return fmt.Errorf("%w: %s body supplied for %s", ErrQuestionMismatch, kind, q.QuestionType)
	}
	return nil
}

var questionTree = []string{
	"Question",
	"Question.MultipleChoice",
	"Question.MultipleChoice.Options",
	"Question.FillInTheBlank",
	"Question.PhotoQuestion",
}

func preloadQuestionTree(db *gorm.DB) *gorm.DB {
	for _, assoc := range questionTree {
		if assoc == "Question.MultipleChoice.Options" {
			db = db.Preload(assoc, func(db *gorm.DB) *gorm.DB { return db.Order("option_id") })
			continue
		}
		db = db.Preload(assoc)
	}
	return db
}

func GetTests(db *gorm.DB) models.Response[[]models.Test] {
	tests := []models.Test{}
	if err := preloadQuestionTree(db).Order("test_id").Find(&tests).Error; err != nil {
		return models.Failure[[]models.Test]("Failed to retrieve tests", err)
	}
	return models.Success("Tests retrieved successfully", tests)
}

func GetTestByID(db *gorm.DB, testID uint) models.Response[*models.Test] {
	var test models.Test
	if err := preloadQuestionTree(db).First(&test, testID).Error; err != nil {
		return storeFailure[*models.Test]("Test", "Failed to retrieve test", err)
	}
	return models.Success("Test retrieved successfully", &test)
}

// CreateTest writes the test and, when a question is supplied, its question and sub-record.
func CreateTest(db *gorm.DB, in NewTest) models.Response[*models.Test] {
	if in.Question != nil {
		if err := in.Question.Validate(); err != nil {
			return models.Failure[*models.Test]("Failed to create test", err)
		}
	}

	test := models.Test{Subject: in.Subject, TestType: in.TestType, Answer: in.Answer}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&test).Error; err != nil {
			return err
		}
		if in.Question == nil {
			return nil
		}
		if err := createQuestion(tx, test.TestID, *in.Question); err != nil {
			return err
		}
		return preloadQuestionTree(tx).First(&test, test.TestID).Error
	})
	if err != nil {
		return models.Failure[*models.Test]("Failed to create test", err)
	}
	return models.Success("Test created successfully", &test)
}

func createQuestion(tx *gorm.DB, testID uint, body QuestionBody) error {
	question := models.Question{
		TestID:       testID,
		Text:         body.Text,
		QuestionType: body.QuestionType,
	}
	if err := tx.Omit(clause.Associations).Create(&question).Error; err != nil {
		return err
	}

	return createSubRecord(tx, question.QuestionID, body)
}

// EditTest updates the scalars and every supplied question that belongs to the test.
func EditTest(db *gorm.DB, testID uint, in TestEdit) models.Response[*models.Test] {
	for _, q := range in.Questions {
		if err := q.Validate(); err != nil {
			return models.Failure[*models.Test]("Failed to update test", err)
		}
	}

	var test models.Test
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&test, testID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if in.Subject != nil {
			updates["subject"] = *in.Subject
		}
		if in.TestType != nil {
			updates["test_type"] = *in.TestType
		}
		if in.Answer != nil {
			updates["answer"] = *in.Answer
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.Test{}).Where("test_id = ?", testID).Updates(updates).Error; err != nil {
				return err
			}
		}

		for _, body := range in.Questions {
			if err := updateQuestion(tx, testID, body); err != nil {
				return err
			}
		}

		return preloadQuestionTree(tx).First(&test, testID).Error
	})
	if errors.Is(err, ErrQuestionNotFound) {
		return models.Failure[*models.Test]("Question not found.", err)
	}
	if err != nil {
		return storeFailure[*models.Test]("Test", "Failed to update test", err)
	}
	return models.Success("Test updated successfully", &test)
}

func updateQuestion(tx *gorm.DB, testID uint, body QuestionBody) error {
	var question models.Question
	if err := tx.Where("question_id = ? AND test_id = ?", body.QuestionID, testID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("question %d: %w", body.QuestionID, ErrQuestionNotFound)
		}
		return fmt.Errorf("question %d: %w", body.QuestionID, err)
	}

	if question.QuestionType != body.QuestionType {
		// the tag changed: drop the old sub-record and write the new one
		if err := deleteSubRecords(tx, []uint{question.QuestionID}); err != nil {
			return err
		}
		if err := tx.Model(&question).Updates(map[string]interface{}{
			"text":          body.Text,
			"question_type": body.QuestionType,
		}).Error; err != nil {
			return err
		}
		return createSubRecord(tx, question.QuestionID, body)
	}

	if err := tx.Model(&question).Update("text", body.Text).Error; err != nil {
		return err
	}

	switch body.QuestionType {
	case models.QuestionTypeMultipleChoice:
		for _, o := range body.MultipleChoice {
			if o.OptionID == 0 {
				option := models.Option{MultipleChoiceID: question.QuestionID, Text: o.Text, IsCorrect: o.IsCorrect}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
				continue
			}
			err := tx.Model(&models.Option{}).
				Where("option_id = ? AND multiple_choice_id = ?", o.OptionID, question.QuestionID).
				Updates(map[string]interface{}{"text": o.Text, "is_correct": o.IsCorrect}).Error
			if err != nil {
				return err
			}
		}
		return nil
	case models.QuestionTypeFillInTheBlank:
		return tx.Model(&models.FillInTheBlank{}).
			Where("question_id = ?", question.QuestionID).
			Update("correct_answer", *body.FillInTheBlank).Error
	case models.QuestionTypePhotoQuestion:
		return tx.Model(&models.PhotoQuestion{}).
			Where("question_id = ?", question.QuestionID).
			Update("photo_url", *body.PhotoQuestion).Error
	}
	return nil
}

func createSubRecord(tx *gorm.DB, questionID uint, body QuestionBody) error {
	switch body.QuestionType {
	case models.QuestionTypeMultipleChoice:
		if err := tx.Omit(clause.Associations).Create(&models.MultipleChoice{QuestionID: questionID}).Error; err != nil {
			return err
		}
		if len(body.MultipleChoice) == 0 {
			return nil
		}
		options := make([]models.Option, 0, len(body.MultipleChoice))
		for _, o := range body.MultipleChoice {
			options = append(options, models.Option{
				MultipleChoiceID: questionID,
				Text:             o.Text,
				IsCorrect:        o.IsCorrect,
			})
		}
		return tx.Create(&options).Error
	case models.QuestionTypeFillInTheBlank:
		return tx.Create(&models.FillInTheBlank{QuestionID: questionID, CorrectAnswer: *body.FillInTheBlank}).Error
	case models.QuestionTypePhotoQuestion:
		return tx.Create(&models.PhotoQuestion{QuestionID: questionID, PhotoURL: *body.PhotoQuestion}).Error
	}
	return nil
}

func deleteSubRecords(tx *gorm.DB, questionIDs []uint) error {
	if err := tx.Where("multiple_choice_id IN ?", questionIDs).Delete(&models.Option{}).Error; err != nil {
		return err
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.MultipleChoice{}).Error; err != nil {
		return err
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.FillInTheBlank{}).Error; err != nil {
		return err
	}
	return tx.Where("question_id IN ?", questionIDs).Delete(&models.PhotoQuestion{}).Error
}

// DeleteTest removes the test with its whole question tree and recorded results.
func DeleteTest(db *gorm.DB, testID uint) models.Response[any] {
	err := db.Transaction(func(tx *gorm.DB) error {
		var test models.Test
		if err := tx.First(&test, testID).Error; err != nil {
			return err
		}

		var questionIDs []uint
		if err := tx.Model(&models.Question{}).Where("test_id = ?", testID).Pluck("question_id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := deleteSubRecords(tx, questionIDs); err != nil {
				return err
			}
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("test_id = ?", testID).Delete(&models.TestResult{}).Error; err != nil {
			return err
		}
		return tx.Delete(&test).Error
	})
	if err != nil {
		return storeFailure[any]("Test", "Failed to delete test", err)
	}
	return models.Success[any]("Test deleted successfully", nil)
}
