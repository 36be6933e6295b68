package services

import (
	"math"

	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/gorm"
)

type NewTestResult struct {
	ChildID uint
	TestID  uint
	Total   int
	Correct int
}

// SaveTestResult stores one attempt. Subject and test type are copied from the test.
func SaveTestResult(db *gorm.DB, in NewTestResult) models.Response[*models.TestResult] {
	if in.Total <= 0 || in.Correct < 0 || in.Correct > in.Total {
		return models.Failure[*models.TestResult]("Failed to save test result", ErrInvalidScore)
	}

	if err := db.Select("child_id").First(&models.Child{}, in.ChildID).Error; err != nil {
		return storeFailure[*models.TestResult]("Child", "Failed to save test result", err)
	}
	var test models.Test
	if err := db.First(&test, in.TestID).Error; err != nil {
		return storeFailure[*models.TestResult]("Test", "Failed to save test result", err)
	}

	result := models.TestResult{
		ChildID:  in.ChildID,
		TestID:   in.TestID,
		Subject:  test.Subject,
		TestType: test.TestType,
		Total:    in.Total,
		Correct:  in.Correct,
		Wrong:    in.Total - in.Correct,
	}
	if err := db.Create(&result).Error; err != nil {
		return models.Failure[*models.TestResult]("Failed to save test result", err)
	}
	return models.Success("Test result saved successfully", &result)
}

type resultGroup struct {
	subject  models.Subject
	testType models.TestType
	testID   uint
}

// GetTestResults returns, per (subject, testType, testId), the child's latest attempt
// with its percentage and the number of attempts made.
func GetTestResults(db *gorm.DB, childID uint) models.Response[[]models.ResultSummary] {
	var rows []models.TestResult
	err := db.Where("child_id = ?", childID).
		Order("created_at desc").
		Order("result_id desc").
		Find(&rows).Error
	if err != nil {
		return models.Failure[[]models.ResultSummary]("Failed to retrieve test results", err)
	}

	return models.Success("Test results retrieved successfully", SummarizeLatestAttempts(rows))
}

// SummarizeLatestAttempts expects rows newest first.
func SummarizeLatestAttempts(rows []models.TestResult) []models.ResultSummary {
	summaries := []models.ResultSummary{}
	index := map[resultGroup]int{}

	for _, r := range rows {
		key := resultGroup{subject: r.Subject, testType: r.TestType, testID: r.TestID}
		if i, seen := index[key]; seen {
			summaries[i].Attempts++
			continue
		}
		index[key] = len(summaries)
		summaries = append(summaries, models.ResultSummary{
			Subject:         r.Subject,
			TestType:        r.TestType,
			TestID:          r.TestID,
			Total:           r.Total,
			Correct:         r.Correct,
			Wrong:           r.Wrong,
			Percentage:      Percentage(int64(r.Correct), int64(r.Total)),
			Attempts:        1,
			LatestAttemptAt: r.CreatedAt,
		})
	}
	return summaries
}

// GetTestResultsBySubject aggregates every attempt of the child per subject.
func GetTestResultsBySubject(db *gorm.DB, childID uint) models.Response[[]models.SubjectAnalysis] {
	rows := []models.SubjectAnalysis{}
	err := db.Model(&models.TestResult{}).
		Select("subject, COUNT(DISTINCT test_id) AS total_tests, SUM(total) AS total_questions, SUM(correct) AS total_correct, SUM(wrong) AS total_wrong").
		Where("child_id = ?", childID).
		Group("subject").
		Order("subject").
		Scan(&rows).Error
	if err != nil {
		return models.Failure[[]models.SubjectAnalysis]("Failed to retrieve test results grouped by subject", err)
	}

	for i := range rows {
		rows[i].Percentage = Percentage(rows[i].TotalCorrect, rows[i].TotalQuestions)
	}
	return models.Success("Test results grouped by subject retrieved successfully", rows)
}

// Percentage is rounded to two decimals; an empty total yields 0.
func Percentage(correct, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*10000) / 100
}
