package services

import (
	"errors"
	"log"

	"github.com/anjiri1684/kids_learning/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type NewParent struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

type ParentUpdate struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Password    *string
}

type LoginResult struct {
	Parent   *models.Parent `json:"parent"`
	Children []uint         `json:"children"`
}

const invalidCredentials = "Invalid email or password."

func CreateParent(db *gorm.DB, in NewParent) models.Response[*models.Parent] {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Failure[*models.Parent]("Failed to hash password.", err)
	}

	parent := models.Parent{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Password:    string(hashedPassword),
	}
	if err := db.Create(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Failure[*models.Parent]("Email already exists.", err)
		}
		return models.Failure[*models.Parent]("Failed to create parent.", err)
	}

	return models.Success("Parent Created!", &parent)
}

func GetParentByID(db *gorm.DB, parentID uint) models.Response[*models.Parent] {
	var parent models.Parent
	if err := db.Preload("Children").First(&parent, parentID).Error; err != nil {
		return storeFailure[*models.Parent]("Parent", "Failed to retrieve parent.", err)
	}
	return models.Success("Parent retrieved successfully!", &parent)
}

func UpdateParent(db *gorm.DB, parentID uint, in ParentUpdate) models.Response[*models.Parent] {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.PhoneNumber != nil {
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.Failure[*models.Parent]("Failed to hash password.", err)
		}
		updates["password"] = string(hashedPassword)
	}

	var parent models.Parent
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&parent, parentID).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&parent).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&parent, parentID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Failure[*models.Parent]("Email already exists.", err)
		}
		return storeFailure[*models.Parent]("Parent", "Failed to update parent.", err)
	}

	return models.Success("Parent updated successfully!", &parent)
}

// DeleteParent removes the parent together with its children and their activity rows.
func DeleteParent(db *gorm.DB, parentID uint) models.Response[any] {
	err := db.Transaction(func(tx *gorm.DB) error {
		var parent models.Parent
		if err := tx.First(&parent, parentID).Error; err != nil {
			return err
		}

		var childIDs []uint
		if err := tx.Model(&models.Child{}).Where("parent_id = ?", parentID).Pluck("child_id", &childIDs).Error; err != nil {
			return err
		}
		if len(childIDs) > 0 {
			if err := deleteChildActivity(tx, childIDs); err != nil {
				return err
			}
			if err := tx.Where("child_id IN ?", childIDs).Delete(&models.Child{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&parent).Error
	})
	if err != nil {
		return storeFailure[any]("Parent", "Failed to delete parent.", err)
	}
	return models.Success[any]("Parent deleted successfully!", nil)
}

// LoginParent answers unknown email and wrong password with the same envelope.
func LoginParent(db *gorm.DB, email, password string) models.Response[*LoginResult] {
	var parent models.Parent
	if err := db.Preload("Children").Where("email = ?", email).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Failure[*LoginResult](invalidCredentials, nil)
		}
		log.Printf("🔥 Login lookup failed for %s: %v", email, err)
		return models.Failure[*LoginResult]("Failed to log in.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(parent.Password), []byte(password)); err != nil {
		return models.Failure[*LoginResult](invalidCredentials, nil)
	}

	children := make([]uint, 0, len(parent.Children))
	for _, child := range parent.Children {
		children = append(children, child.ChildID)
	}

	return models.Success("Login successful!", &LoginResult{Parent: &parent, Children: children})
}
