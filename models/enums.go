package models

type Subject string

const (
	SubjectMath      Subject = "Math"
	SubjectEnglish   Subject = "English"
	SubjectScience   Subject = "Science"
	SubjectMongolian Subject = "Mongolian"
	SubjectArt       Subject = "Art"
)

type LessonType string

const (
	LessonTypeWord  LessonType = "Word"
	LessonTypePhoto LessonType = "Photo"
	LessonTypeVideo LessonType = "Video"
)

type TestType string

const (
	TestTypeQuiz     TestType = "Quiz"
	TestTypeExam     TestType = "Exam"
	TestTypePractice TestType = "Practice"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MultipleChoice"
	QuestionTypeFillInTheBlank QuestionType = "FillInTheBlank"
	QuestionTypePhotoQuestion  QuestionType = "PhotoQuestion"
)

func (s Subject) Valid() bool {
	switch s {
	case SubjectMath, SubjectEnglish, SubjectScience, SubjectMongolian, SubjectArt:
		return true
	}
	return false
}

func (q QuestionType) Valid() bool {
	switch q {
	case QuestionTypeMultipleChoice, QuestionTypeFillInTheBlank, QuestionTypePhotoQuestion:
		return true
	}
	return false
}
