package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"learnread/internal/curriculum"
	"learnread/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// ReportService mails a short progress summary to a parent via Amazon
// SES. Left unconfigured it is disabled and every send is a logged
// no-op.
type ReportService struct {
	client      *sesv2.Client
	fromEmail   string
	fromName    string
	parentEmail string
	enabled     bool
	debug       bool
}

// NewReportService creates a new report service. An empty fromEmail
// disables it.
func NewReportService(awsRegion, fromEmail, fromName, parentEmail string, debug bool) (*ReportService, error) {
	if fromEmail == "" {
		log.Println("Report service disabled: SES_FROM_EMAIL not configured")
		return &ReportService{enabled: false, debug: debug}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Report service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &ReportService{
		client:      sesv2.NewFromConfig(cfg),
		fromEmail:   fromEmail,
		fromName:    fromName,
		parentEmail: parentEmail,
		enabled:     true,
		debug:       debug,
	}, nil
}

// IsEnabled returns whether sending is configured.
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport builds and sends the summary email for one
// learner's current progress.
func (s *ReportService) SendProgressReport(ctx context.Context, learner models.Learner, p models.Progress, percent int) error {
	if !s.enabled {
		log.Println("Report service disabled, skipping progress report")
		return nil
	}
	if s.parentEmail == "" {
		return fmt.Errorf("no parent email configured")
	}

	subject := fmt.Sprintf("Успехи %s в LearnRead", learner.Name)
	body := s.buildReportBody(learner, p, percent)

	if s.debug {
		log.Printf("[DEBUG] Sending progress report to %s:\n%s", s.parentEmail, body)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{s.parentEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send progress report: %w", err)
	}

	log.Printf("Progress report sent to %s for learner %s", s.parentEmail, learner.ID)
	return nil
}

// buildReportBody renders the plain-text summary.
func (s *ReportService) buildReportBody(learner models.Learner, p models.Progress, percent int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Привет!\n\n")
	fmt.Fprintf(&b, "Вот как идут дела у %s:\n\n", learner.Name)
	fmt.Fprintf(&b, "Пройдено занятий: %d из %d (%d%%)\n", len(p.CompletedDays), curriculum.GetTotalDays(), percent)
	fmt.Fprintf(&b, "Текущее занятие: %d\n", p.CurrentDay)
	fmt.Fprintf(&b, "Знает букв: %d\n", len(p.KnownLetters))
	if len(p.UnknownLetters) > 0 {
		fmt.Fprintf(&b, "Учим буквы: %s\n", strings.Join(p.UnknownLetters, ", "))
	}

	if p.Stage1.Stage1Passed {
		fmt.Fprintf(&b, "\nЭтап 1 (буквы и слоги) пройден!\n")
	} else {
		fmt.Fprintf(&b, "\nЭтап 1: прочитано слогов — %d, слов — %d\n",
			len(p.Stage1.SyllablesRead), len(p.Stage1.WordsRead))
	}

	if len(p.Achievements) > 0 {
		fmt.Fprintf(&b, "\nНаграды: %s\n", strings.Join(p.Achievements, ", "))
	}

	fmt.Fprintf(&b, "\nТак держать!\nLearnRead\n")
	return b.String()
}
