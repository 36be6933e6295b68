package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/anjiri1684/kids_learning/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"gorm.io/gorm"
)

const reportTimeout = 30 * time.Second

type ProgressReport struct {
	ChildName   string
	GeneratedAt time.Time
	Subjects    []models.SubjectAnalysis
	Lessons     []models.LessonProgress
	Latest      []models.ResultSummary
}

// PDFRenderer turns an HTML document into PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.ChildName}} progress report</title>
<style>
body { font-family: sans-serif; margin: 32px; color: #222; }
h1 { color: #3b5bdb; }
table { border-collapse: collapse; width: 100%; margin-bottom: 24px; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #edf2ff; }
</style>
</head>
<body>
<h1>{{.ChildName}}</h1>
<p>Generated {{.GeneratedAt.Format "January 2, 2006"}}</p>
<h2>Tests by subject</h2>
<table>
<tr><th>Subject</th><th>Tests</th><th>Questions</th><th>Correct</th><th>Wrong</th><th>Score</th></tr>
{{range .Subjects}}<tr><td>{{.Subject}}</td><td>{{.TotalTests}}</td><td>{{.TotalQuestions}}</td><td>{{.TotalCorrect}}</td><td>{{.TotalWrong}}</td><td>{{printf "%.2f" .Percentage}}%</td></tr>
{{else}}<tr><td colspan="6">No tests taken yet</td></tr>
{{end}}</table>
<h2>Lessons</h2>
<table>
<tr><th>Subject</th><th>Completed</th><th>Total</th></tr>
{{range .Lessons}}<tr><td>{{.Subject}}</td><td>{{.CompletedLessons}}</td><td>{{.TotalLessons}}</td></tr>
{{end}}</table>
<h2>Latest attempts</h2>
<table>
<tr><th>Test</th><th>Subject</th><th>Type</th><th>Correct</th><th>Total</th><th>Score</th><th>Attempts</th></tr>
{{range .Latest}}<tr><td>#{{.TestID}}</td><td>{{.Subject}}</td><td>{{.TestType}}</td><td>{{.Correct}}</td><td>{{.Total}}</td><td>{{printf "%.2f" .Percentage}}%</td><td>{{.Attempts}}</td></tr>
{{end}}</table>
</body>
</html>`))

var reportSubjects = []models.Subject{
	models.SubjectMath,
	models.SubjectEnglish,
	models.SubjectScience,
	models.SubjectMongolian,
	models.SubjectArt,
}

func BuildProgressReport(db *gorm.DB, childID uint) models.Response[*ProgressReport] {
	name := GetChildNameByID(db, childID)
	if !name.OK() {
		return models.Response[*ProgressReport]{Status: name.Status, Message: name.Message, Error: name.Error}
	}

	report := &ProgressReport{ChildName: name.Data.Name, GeneratedAt: time.Now()}

	subjects := GetTestResultsBySubject(db, childID)
	if !subjects.OK() {
		return models.Response[*ProgressReport]{Status: subjects.Status, Message: subjects.Message, Error: subjects.Error}
	}
	report.Subjects = subjects.Data

	latest := GetTestResults(db, childID)
	if !latest.OK() {
		return models.Response[*ProgressReport]{Status: latest.Status, Message: latest.Message, Error: latest.Error}
	}
	report.Latest = latest.Data

	for _, subject := range reportSubjects {
		progress := GetLessonsBySubjectAndChild(db, childID, subject)
		if !progress.OK() {
			return models.Response[*ProgressReport]{Status: progress.Status, Message: progress.Message, Error: progress.Error}
		}
		if progress.Data.TotalLessons > 0 {
			report.Lessons = append(report.Lessons, *progress.Data)
		}
	}

	return models.Success("Progress report built successfully", report)
}

func RenderReportHTML(report *ProgressReport) (string, error) {
	var rendered bytes.Buffer
	if err := reportTemplate.Execute(&rendered, report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return rendered.String(), nil
}

// ChromePDFRenderer prints HTML through a headless Chrome started per call.
type ChromePDFRenderer struct{}

func (ChromePDFRenderer) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()
	ctx, cancelChrome := chromedp.NewContext(ctx)
	defer cancelChrome()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
