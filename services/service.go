package services

import (
	"errors"

	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/gorm"
)

var (
	ErrQuestionMismatch = errors.New("question sub-record does not match its type")
	ErrInvalidScore     = errors.New("correct answers must be between 0 and total questions")
	ErrQuestionNotFound = errors.New("question does not belong to this test")
)

// storeFailure maps a store error onto the envelope, naming the entity when it was missing.
func storeFailure[T any](entity, message string, err error) models.Response[T] {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Failure[T](entity+" not found.", err)
	}
	return models.Failure[T](message, err)
}
