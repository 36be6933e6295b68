package services

import (
	"testing"

	"github.com/anjiri1684/kids_learning/database/dbtest"
	"github.com/anjiri1684/kids_learning/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(modules []models.Module) []string {
	out := make([]string, 0, len(modules))
	for _, m := range modules {
		out = append(out, m.Word)
	}
	return out
}

func TestCreateLessonRoundTrip(t *testing.T) {
	db := dbtest.New(t)
	lesson := seedLesson(t, db, models.SubjectEnglish, "apple", "ball", "cat")

	res := GetLessonByID(db, lesson.LessonID)
	require.True(t, res.OK())
	assert.Equal(t, "English basics", res.Data.LessonTitle)
	assert.Equal(t, []string{"apple", "ball", "cat"}, words(res.Data.Modules))
	for _, m := range res.Data.Modules {
		assert.Equal(t, lesson.LessonID, m.LessonID)
	}
}

func TestGetLessonsBySubject(t *testing.T) {
	db := dbtest.New(t)
	seedLesson(t, db, models.SubjectMath, "one")
	seedLesson(t, db, models.SubjectEnglish, "apple")
	seedLesson(t, db, models.SubjectMath, "two")

	all := GetLessons(db)
	require.True(t, all.OK())
	assert.Len(t, all.Data, 3)

	math := GetLessonsBySubject(db, models.SubjectMath)
	require.True(t, math.OK())
	require.Len(t, math.Data, 2)
	assert.Equal(t, []string{"one"}, words(math.Data[0].Modules))
	assert.Equal(t, []string{"two"}, words(math.Data[1].Modules))

	none := GetLessonsBySubject(db, models.SubjectScience)
	require.True(t, none.OK())
	assert.Empty(t, none.Data)
}

func TestEditLessonAppliesKeepList(t *testing.T) {
	db := dbtest.New(t)
	lesson := seedLesson(t, db, models.SubjectEnglish, "apple", "ball", "cat")
	a, c := lesson.Modules[0], lesson.Modules[2]

	photo := "https://img.test/apple.png"
	res := EditLesson(db, lesson.LessonID, LessonEdit{
		LessonTitle: strPtr("Fruit and pets"),
		ExistingModules: []models.Module{
			{ModuleID: a.ModuleID, Word: "apricot", PhotoURL: &photo},
			{ModuleID: c.ModuleID, Word: "cat"},
		},
		NewModules: []ModuleInput{{Word: "dog"}},
	})
	require.True(t, res.OK(), "%s: %s", res.Message, res.Error)

	assert.Equal(t, "Fruit and pets", res.Data.LessonTitle)
	assert.Equal(t, models.SubjectEnglish, res.Data.Subject)
	assert.Equal(t, []string{"apricot", "cat", "dog"}, words(res.Data.Modules))
	require.NotNil(t, res.Data.Modules[0].PhotoURL)
	assert.Equal(t, photo, *res.Data.Modules[0].PhotoURL)

	var removed int64
	db.Model(&models.Module{}).Where("word = ?", "ball").Count(&removed)
	assert.Zero(t, removed)
}

func TestEditLessonKeepsPhotoWhenOmitted(t *testing.T) {
	db := dbtest.New(t)
	lesson := seedLesson(t, db, models.SubjectEnglish, "apple")
	module := lesson.Modules[0]

	photo := "https://img.test/apple.png"
	require.NoError(t, db.Model(&models.Module{}).
		Where("module_id = ?", module.ModuleID).
		Update("photo_url", photo).Error)

	res := EditLesson(db, lesson.LessonID, LessonEdit{
		ExistingModules: []models.Module{{ModuleID: module.ModuleID, Word: "Apple"}},
	})
	require.True(t, res.OK(), "%s: %s", res.Message, res.Error)
	require.Len(t, res.Data.Modules, 1)
	assert.Equal(t, "Apple", res.Data.Modules[0].Word)
	require.NotNil(t, res.Data.Modules[0].PhotoURL)
	assert.Equal(t, photo, *res.Data.Modules[0].PhotoURL)
}

func TestEditLessonWithoutKeepListLeavesModules(t *testing.T) {
	db := dbtest.New(t)
	lesson := seedLesson(t, db, models.SubjectArt, "red", "blue")

	subject := models.SubjectScience
	res := EditLesson(db, lesson.LessonID, LessonEdit{Subject: &subject})
	require.True(t, res.OK())
	assert.Equal(t, models.SubjectScience, res.Data.Subject)
	assert.Equal(t, []string{"red", "blue"}, words(res.Data.Modules))

	cleared := EditLesson(db, lesson.LessonID, LessonEdit{ExistingModules: []models.Module{}})
	require.True(t, cleared.OK())
	assert.Empty(t, cleared.Data.Modules)
}

func TestEditLessonNotFound(t *testing.T) {
	db := dbtest.New(t)

	res := EditLesson(db, 404, LessonEdit{LessonTitle: strPtr("x")})
	assert.Equal(t, "Lesson not found.", res.Message)
}

func TestDeleteLessonCascades(t *testing.T) {
	db := dbtest.New(t)
	parent := seedParent(t, db, "bold@kids.test")
	child := seedChild(t, db, parent.ParentID, "Anu")
	lesson := seedLesson(t, db, models.SubjectMath, "one", "two")
	require.True(t, CreateCompletion(db, child.ChildID, lesson.LessonID).OK())

	require.True(t, DeleteLesson(db, lesson.LessonID).OK())

	var modules, completions, lessons int64
	db.Model(&models.Module{}).Count(&modules)
	db.Model(&models.LessonCompletion{}).Count(&completions)
	db.Model(&models.Lesson{}).Count(&lessons)
	assert.Zero(t, modules)
	assert.Zero(t, completions)
	assert.Zero(t, lessons)

	assert.Equal(t, "Lesson not found.", DeleteLesson(db, lesson.LessonID).Message)
}
