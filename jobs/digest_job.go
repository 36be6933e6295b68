package jobs

import (
	"bytes"
	"context"
	"html/template"
	"log"
	"time"

	"github.com/anjiri1684/kids_learning/models"
	"github.com/anjiri1684/kids_learning/notifications"
	"github.com/anjiri1684/kids_learning/services"
	"gorm.io/gorm"
)

const digestWindow = 7 * 24 * time.Hour

type childDigest struct {
	Name       string
	Tests      int64
	Correct    int64
	Total      int64
	Percentage float64
	Lessons    int64
}

var digestTemplate = template.Must(template.New("digest").Parse(`<h1>Weekly progress</h1>
<p>Hi {{.Parent}}, here is what your children did since {{.Since.Format "Jan 2"}}.</p>
<ul>{{range .Children}}
<li><b>{{.Name}}</b>: {{.Tests}} test(s), {{.Correct}}/{{.Total}} correct ({{printf "%.0f" .Percentage}}%), {{.Lessons}} lesson(s) completed</li>{{end}}
</ul>`))

// SendProgressDigests mails every parent whose children were active since the given
// time. Parents with no activity in the window get nothing. It returns the number of mails sent.
func SendProgressDigests(db *gorm.DB, mailer notifications.Mailer, since time.Time) (int, error) {
	log.Println("Running job: SendProgressDigests...")

	var parents []models.Parent
	if err := db.Preload("Children").Find(&parents).Error; err != nil {
		log.Printf("Error loading parents for digest: %v", err)
		return 0, err
	}

	sent := 0
	for _, parent := range parents {
		var lines []childDigest
		for _, child := range parent.Children {
			line, err := digestFor(db, child, since)
			if err != nil {
				log.Printf("Error building digest for child %d: %v", child.ChildID, err)
				return sent, err
			}
			if line.Tests > 0 || line.Lessons > 0 {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}

		var body bytes.Buffer
		err := digestTemplate.Execute(&body, map[string]interface{}{
			"Parent":   parent.Name,
			"Since":    since,
			"Children": lines,
		})
		if err != nil {
			return sent, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err = mailer.Send(ctx, parent.Email, parent.Name, "Your weekly learning digest", body.String())
		cancel()
		if err != nil {
			log.Printf("🔥 Failed to send digest to %s: %v", parent.Email, err)
			continue
		}
		sent++
	}

	log.Printf("Sent %d progress digest(s).", sent)
	return sent, nil
}

func digestFor(db *gorm.DB, child models.Child, since time.Time) (childDigest, error) {
	line := childDigest{Name: child.Name}

	var totals struct {
		Tests   int64
		Correct int64
		Total   int64
	}
	err := db.Model(&models.TestResult{}).
		Select("COUNT(*) AS tests, COALESCE(SUM(correct), 0) AS correct, COALESCE(SUM(total), 0) AS total").
		Where("child_id = ? AND created_at >= ?", child.ChildID, since).
		Scan(&totals).Error
	if err != nil {
		return line, err
	}
	line.Tests, line.Correct, line.Total = totals.Tests, totals.Correct, totals.Total
	line.Percentage = services.Percentage(totals.Correct, totals.Total)

	err = db.Model(&models.LessonCompletion{}).
		Where("child_id = ? AND completed_at >= ?", child.ChildID, since).
		Count(&line.Lessons).Error
	return line, err
}
