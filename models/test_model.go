package models

type Test struct {
	TestID   uint     `gorm:"primaryKey" json:"testId"`
	Subject  Subject  `gorm:"size:50;not null;index" json:"subject"`
	TestType TestType `gorm:"size:50;not null" json:"testType"`
	Answer   string   `gorm:"type:text" json:"answer"`

	Question *Question `gorm:"foreignKey:TestID" json:"question,omitempty"`
}

// Question carries exactly one sub-record, selected by QuestionType.
type Question struct {
	QuestionID   uint         `gorm:"primaryKey" json:"questionId"`
	TestID       uint         `gorm:"not null;index" json:"testId"`
	Text         string       `gorm:"type:text;not null" json:"text"`
	QuestionType QuestionType `gorm:"size:50;not null" json:"questionType"`

	MultipleChoice *MultipleChoice `gorm:"foreignKey:QuestionID;references:QuestionID" json:"multipleChoice,omitempty"`
	FillInTheBlank *FillInTheBlank `gorm:"foreignKey:QuestionID;references:QuestionID" json:"fillInTheBlank,omitempty"`
	PhotoQuestion  *PhotoQuestion  `gorm:"foreignKey:QuestionID;references:QuestionID" json:"photoQuestion,omitempty"`
}

type MultipleChoice struct {
	QuestionID uint `gorm:"primaryKey;autoIncrement:false" json:"questionId"`

	Options []Option `gorm:"foreignKey:MultipleChoiceID;references:QuestionID" json:"options"`
}

type Option struct {
	OptionID         uint   `gorm:"primaryKey" json:"optionId"`
	MultipleChoiceID uint   `gorm:"not null;index" json:"multipleChoiceId"`
	Text             string `gorm:"type:text;not null" json:"text"`
	IsCorrect        bool   `gorm:"not null;default:false" json:"isCorrect"`
}

type FillInTheBlank struct {
	QuestionID    uint   `gorm:"primaryKey;autoIncrement:false" json:"questionId"`
	CorrectAnswer string `gorm:"type:text;not null" json:"correctAnswer"`
}

type PhotoQuestion struct {
	QuestionID uint   `gorm:"primaryKey;autoIncrement:false" json:"questionId"`
	PhotoURL   string `gorm:"size:512;not null" json:"photoUrl"`
}
