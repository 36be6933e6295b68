package services

import (
	"encoding/json"
	"testing"

	"github.com/anjiri1684/kids_learning/database/dbtest"
	"github.com/anjiri1684/kids_learning/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateParentStoresHash(t *testing.T) {
	db := dbtest.New(t)

	parent := seedParent(t, db, "bold@kids.test")
	assert.NotEqual(t, "secret1", parent.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(parent.Password), []byte("secret1")))

	res := GetParentByID(db, parent.ParentID)
	require.True(t, res.OK())
	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), parent.Password)
}

func TestCreateParentRejectsDuplicateEmail(t *testing.T) {
	db := dbtest.New(t)
	seedParent(t, db, "bold@kids.test")

	res := CreateParent(db, NewParent{Name: "Other", Email: "bold@kids.test", Password: "secret2"})
	assert.False(t, res.OK())
	assert.Equal(t, "Email already exists.", res.Message)
}

func TestGetParentByIDNotFound(t *testing.T) {
	db := dbtest.New(t)

	res := GetParentByID(db, 42)
	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, "Parent not found.", res.Message)
}

func TestLoginParent(t *testing.T) {
	db := dbtest.New(t)
	parent := seedParent(t, db, "bold@kids.test")
	first := seedChild(t, db, parent.ParentID, "Anu")
	second := seedChild(t, db, parent.ParentID, "Temuujin")

	res := LoginParent(db, "bold@kids.test", "secret1")
	require.True(t, res.OK(), res.Message)
	assert.Equal(t, parent.ParentID, res.Data.Parent.ParentID)
	assert.ElementsMatch(t, []uint{first.ChildID, second.ChildID}, res.Data.Children)

	unknown := LoginParent(db, "nobody@kids.test", "secret1")
	wrong := LoginParent(db, "bold@kids.test", "not-it")
	assert.False(t, unknown.OK())
	assert.Equal(t, unknown, wrong)
}

func TestLoginParentWithoutChildren(t *testing.T) {
	db := dbtest.New(t)
	seedParent(t, db, "bold@kids.test")

	res := LoginParent(db, "bold@kids.test", "secret1")
	require.True(t, res.OK())
	assert.NotNil(t, res.Data.Children)
	assert.Empty(t, res.Data.Children)
}

func TestUpdateParent(t *testing.T) {
	db := dbtest.New(t)
	parent := seedParent(t, db, "bold@kids.test")

	res := UpdateParent(db, parent.ParentID, ParentUpdate{Name: strPtr("Bold B."), Password: strPtr("newsecret")})
	require.True(t, res.OK(), res.Message)
	assert.Equal(t, "Bold B.", res.Data.Name)
	assert.Equal(t, "bold@kids.test", res.Data.Email)

	assert.False(t, LoginParent(db, "bold@kids.test", "secret1").OK())
	assert.True(t, LoginParent(db, "bold@kids.test", "newsecret").OK())

	seedParent(t, db, "saraa@kids.test")
	dup := UpdateParent(db, parent.ParentID, ParentUpdate{Email: strPtr("saraa@kids.test")})
	assert.Equal(t, "Email already exists.", dup.Message)

	missing := UpdateParent(db, 999, ParentUpdate{Name: strPtr("x")})
	assert.Equal(t, "Parent not found.", missing.Message)
}

func TestDeleteParentCascades(t *testing.T) {
	db := dbtest.New(t)
	parent := seedParent(t, db, "bold@kids.test")
	child := seedChild(t, db, parent.ParentID, "Anu")
	lesson := seedLesson(t, db, models.SubjectMath, "one")
	test := seedTest(t, db, models.SubjectMath, nil)
	require.True(t, CreateCompletion(db, child.ChildID, lesson.LessonID).OK())
	require.True(t, SaveTestResult(db, NewTestResult{ChildID: child.ChildID, TestID: test.TestID, Total: 4, Correct: 2}).OK())

	res := DeleteParent(db, parent.ParentID)
	require.True(t, res.OK(), res.Message)

	var children, results, completions int64
	db.Model(&models.Child{}).Count(&children)
	db.Model(&models.TestResult{}).Count(&results)
	db.Model(&models.LessonCompletion{}).Count(&completions)
	assert.Zero(t, children)
	assert.Zero(t, results)
	assert.Zero(t, completions)

	assert.Equal(t, "Parent not found.", DeleteParent(db, parent.ParentID).Message)
}

func TestParentStoreFailure(t *testing.T) {
	db, _ := dbtest.NewMock(t)

	res := GetParentByID(db, 1)
	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, "Failed to retrieve parent.", res.Message)
	assert.NotEmpty(t, res.Error)

	login := LoginParent(db, "bold@kids.test", "secret1")
	assert.Equal(t, "Failed to log in.", login.Message)
}
