package services

import (
	"testing"
	"time"

	"github.com/anjiri1684/kids_learning/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedParent(t *testing.T, db *gorm.DB, email string) *models.Parent {
	t.Helper()
	res := CreateParent(db, NewParent{Name: "Bold", Email: email, PhoneNumber: "99112233", Password: "secret1"})
	require.True(t, res.OK(), res.Message)
	return res.Data
}

func seedChild(t *testing.T, db *gorm.DB, parentID uint, name string) *models.Child {
	t.Helper()
	res := CreateChild(db, parentID, ChildInput{Name: name, DateOfBirth: time.Date(2018, 5, 4, 0, 0, 0, 0, time.UTC)})
	require.True(t, res.OK(), res.Message)
	return res.Data
}

func seedLesson(t *testing.T, db *gorm.DB, subject models.Subject, words ...string) *models.Lesson {
	t.Helper()
	in := NewLesson{LessonTitle: string(subject) + " basics", LessonType: models.LessonTypeWord, Subject: subject}
	for _, w := range words {
		in.Modules = append(in.Modules, ModuleInput{Word: w})
	}
	res := CreateLesson(db, in)
	require.True(t, res.OK(), res.Message)
	return res.Data
}

func multipleChoice(text string, options ...OptionInput) *QuestionBody {
	return &QuestionBody{Text: text, QuestionType: models.QuestionTypeMultipleChoice, MultipleChoice: options}
}

func seedTest(t *testing.T, db *gorm.DB, subject models.Subject, question *QuestionBody) *models.Test {
	t.Helper()
	res := CreateTest(db, NewTest{Subject: subject, TestType: models.TestTypeQuiz, Answer: "b", Question: question})
	require.True(t, res.OK(), "%s: %s", res.Message, res.Error)
	return res.Data
}

func strPtr(s string) *string { return &s }
