package models

import "time"

type TestResult struct {
	ResultID uint     `gorm:"primaryKey" json:"resultId"`
	ChildID  uint     `gorm:"not null;index" json:"childId"`
	TestID   uint     `gorm:"not null;index" json:"testId"`
	Subject  Subject  `gorm:"size:50;not null" json:"subject"`
	TestType TestType `gorm:"size:50;not null" json:"testType"`
	Total    int      `gorm:"not null" json:"total"`
	Correct  int      `gorm:"not null" json:"correct"`
	Wrong    int      `gorm:"not null" json:"wrong"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// ResultSummary is the latest attempt of one (subject, testType, testId) group.
type ResultSummary struct {
	Subject         Subject   `json:"subject"`
	TestType        TestType  `json:"testType"`
	TestID          uint      `json:"testId"`
	Total           int       `json:"total"`
	Correct         int       `json:"correct"`
	Wrong           int       `json:"wrong"`
	Percentage      float64   `json:"percentage"`
	Attempts        int       `json:"attempts"`
	LatestAttemptAt time.Time `json:"latestAttemptAt"`
}

type SubjectAnalysis struct {
	Subject        Subject `json:"subject"`
	TotalTests     int64   `json:"totalTests"`
	TotalQuestions int64   `json:"totalQuestions"`
	TotalCorrect   int64   `json:"totalCorrect"`
	TotalWrong     int64   `json:"totalWrong"`
	Percentage     float64 `json:"percentage"`
}
