// Package ses sends the post-submission notification emails through AWS SES.
package ses

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/studentjobsgroningen/site-services/api/internal/employer/domain"
)

type api interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Mailer implements the employer notifier on SES. Both sends are advisory:
// callers dispatch them after the store write and only log failures.
type Mailer struct {
	client       api
	fromAddress  string
	staffAddress string
}

// NewMailer builds a mailer sending from fromAddress, with staff alerts
// going to staffAddress.
func NewMailer(cfg aws.Config, fromAddress, staffAddress string) *Mailer {
	return &Mailer{
		client:       ses.NewFromConfig(cfg),
		fromAddress:  strings.TrimSpace(fromAddress),
		staffAddress: strings.TrimSpace(staffAddress),
	}
}

// NotifyStaff mails the internal new-submission alert.
func (m *Mailer) NotifyStaff(ctx context.Context, submission domain.Submission, id string) error {
	if m.staffAddress == "" {
		return nil
	}
	subject := fmt.Sprintf("New job submission: %s at %s", submission.JobTitle, submission.Company)
	return m.send(ctx, m.staffAddress, subject, staffAlertBody(submission, id))
}

// ConfirmEmployer mails the submission receipt to the employer contact.
func (m *Mailer) ConfirmEmployer(ctx context.Context, submission domain.Submission, id string) error {
	subject := fmt.Sprintf("We received your job posting: %s", submission.JobTitle)
	return m.send(ctx, submission.Email, subject, confirmationBody(submission, id))
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if m.fromAddress == "" {
		return fmt.Errorf("sender address is not configured")
	}

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.fromAddress),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func staffAlertBody(submission domain.Submission, id string) string {
	var b strings.Builder
	b.WriteString("A new employer job submission is waiting for review.\n\n")
	writeLine(&b, "Submission ID", id)
	writeLine(&b, "Company", submission.Company)
	writeLine(&b, "Contact", submission.ContactName)
	writeLine(&b, "Email", submission.Email)
	writeLine(&b, "Phone", submission.Phone)
	writeLine(&b, "Job title", submission.JobTitle)
	writeLine(&b, "Employment type", submission.EmploymentType)
	writeLine(&b, "Category", submission.Category)
	writeLine(&b, "City", submission.City)
	writeLine(&b, "Area", submission.Area)
	writeLine(&b, "Plan", planLabel(submission))
	if submission.BaseSalaryMin != nil || submission.BaseSalaryMax != nil {
		writeLine(&b, "Salary", salaryLabel(submission))
	}
	if submission.EnglishFriendly {
		writeLine(&b, "English friendly", "yes")
	}
	writeLine(&b, "External URL", submission.ExternalURL)
	writeLine(&b, "Logo", submission.LogoURL)
	b.WriteString("\n")
	b.WriteString(submission.Description)
	b.WriteString("\n")
	return b.String()
}

func confirmationBody(submission domain.Submission, id string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", submission.ContactName)
	fmt.Fprintf(&b, "Thanks for submitting %q for %s. Our team reviews every posting before it goes live, usually within 24 hours.\n\n", submission.JobTitle, submission.Company)
	writeLine(&b, "Reference", id)
	writeLine(&b, "Plan", planLabel(submission))
	b.WriteString("\nWe will email you as soon as the posting is published. Reply to this message if anything needs to change.\n\n")
	b.WriteString("Student Jobs Groningen\n")
	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func planLabel(submission domain.Submission) string {
	if submission.Plan == "" {
		return ""
	}
	if submission.PlanPriceEUR != "" {
		return fmt.Sprintf("%s (€%s)", submission.Plan, submission.PlanPriceEUR)
	}
	return submission.Plan
}

func salaryLabel(submission domain.Submission) string {
	format := func(v *float64) string {
		if v == nil {
			return "?"
		}
		return fmt.Sprintf("€%.2f", *v)
	}
	return fmt.Sprintf("%s – %s per hour", format(submission.BaseSalaryMin), format(submission.BaseSalaryMax))
}
