package services

import (
	"time"

	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChildInput struct {
	Name        string
	DateOfBirth time.Time
}

type ChildName struct {
	ChildID uint   `json:"childId"`
	Name    string `json:"name"`
}

// CreateChild does not check that the parent exists; the foreign key does.
func CreateChild(db *gorm.DB, parentID uint, in ChildInput) models.Response[*models.Child] {
	child := models.Child{
		ParentID:    parentID,
		Name:        in.Name,
		DateOfBirth: datatypes.Date(in.DateOfBirth),
	}
	if err := db.Create(&child).Error; err != nil {
		return models.Failure[*models.Child]("Error creating child!", err)
	}
	return models.Success("Child created successfully!", &child)
}

func GetChildrenByParent(db *gorm.DB, parentID uint) models.Response[[]models.Child] {
	children := []models.Child{}
	if err := db.Where("parent_id = ?", parentID).Order("child_id").Find(&children).Error; err != nil {
		return models.Failure[[]models.Child]("Error fetching children!", err)
	}
	return models.Success("Children fetched successfully!", children)
}

func GetChildByID(db *gorm.DB, childID uint) models.Response[*models.Child] {
	var child models.Child
	if err := db.First(&child, childID).Error; err != nil {
		return storeFailure[*models.Child]("Child", "Error fetching child!", err)
	}
	return models.Success("Child fetched successfully!", &child)
}

func GetChildNameByID(db *gorm.DB, childID uint) models.Response[*ChildName] {
	var name ChildName
	err := db.Model(&models.Child{}).
		Select("child_id", "name").
		Where("child_id = ?", childID).
		Take(&name).Error
	if err != nil {
		return storeFailure[*ChildName]("Child", "Error fetching child name!", err)
	}
	return models.Success("Child name fetched successfully!", &name)
}

// UpdateChild replaces the stored record's mutable fields. A zero parentID keeps the current parent.
func UpdateChild(db *gorm.DB, childID, parentID uint, in ChildInput) models.Response[*models.Child] {
	var child models.Child
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&child, childID).Error; err != nil {
			return err
		}
		if parentID != 0 {
			child.ParentID = parentID
		}
		child.Name = in.Name
		child.DateOfBirth = datatypes.Date(in.DateOfBirth)
		return tx.Save(&child).Error
	})
	if err != nil {
		return storeFailure[*models.Child]("Child", "Error updating child!", err)
	}
	return models.Success("Child updated successfully!", &child)
}

func DeleteChild(db *gorm.DB, childID uint) models.Response[any] {
	err := db.Transaction(func(tx *gorm.DB) error {
		var child models.Child
		if err := tx.First(&child, childID).Error; err != nil {
			return err
		}
		if err := deleteChildActivity(tx, []uint{childID}); err != nil {
			return err
		}
		return tx.Delete(&child).Error
	})
	if err != nil {
		return storeFailure[any]("Child", "Error deleting child!", err)
	}
	return models.Success[any]("Child deleted successfully!", nil)
}

func deleteChildActivity(tx *gorm.DB, childIDs []uint) error {
	if err := tx.Where("child_id IN ?", childIDs).Delete(&models.TestResult{}).Error; err != nil {
		return err
	}
	return tx.Where("child_id IN ?", childIDs).Delete(&models.LessonCompletion{}).Error
}

// GetChildrenWithParentDetails is the admin listing. Age is the calendar-year difference only.
func GetChildrenWithParentDetails(db *gorm.DB) models.Response[[]models.ChildWithParent] {
	var children []models.Child
	if err := db.Preload("Parent").Order("child_id").Find(&children).Error; err != nil {
		return models.Failure[[]models.ChildWithParent]("Error fetching children!", err)
	}

	currentYear := time.Now().Year()
	rows := make([]models.ChildWithParent, 0, len(children))
	for _, child := range children {
		dob := time.Time(child.DateOfBirth)
		row := models.ChildWithParent{
			ChildID:     child.ChildID,
			Name:        child.Name,
			DateOfBirth: dob,
			Age:         AgeInYears(dob, currentYear),
			ParentID:    child.ParentID,
		}
		if child.Parent != nil {
			row.ParentName = child.Parent.Name
			row.ParentEmail = child.Parent.Email
			row.ParentPhone = child.Parent.PhoneNumber
		}
		rows = append(rows, row)
	}
	return models.Success("Children with parent details fetched successfully!", rows)
}

func AgeInYears(dateOfBirth time.Time, currentYear int) int {
	if dateOfBirth.IsZero() {
		return 0
	}
	return currentYear - dateOfBirth.Year()
}
