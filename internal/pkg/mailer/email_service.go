// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"visa-casework-be/pkg/checklist"
)

type IEmailService interface {
	SendChecklistDigest(toEmail, applicantName string, sections []checklist.SectionDigest) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendChecklistDigest(toEmail, applicantName string, sections []checklist.SectionDigest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Outstanding items for your visa application")

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">`)
	fmt.Fprintf(&b, "<h2>Hello %s,</h2>", applicantName)
	b.WriteString("<p>The following items on your application still need attention:</p>")

	for _, section := range sections {
		fmt.Fprintf(&b, "<h3 style=\"text-transform: capitalize;\">%s</h3><ul>", section.Section)
		for _, item := range section.MissingFields {
			fmt.Fprintf(&b, "<li>Missing information: %s</li>", item.Label)
		}
		for _, ev := range section.MissingEvidence {
			fmt.Fprintf(&b, "<li>Missing document: %s</li>", ev.Name)
		}
		for _, issue := range section.OpenIssues {
			fmt.Fprintf(&b, "<li>Open issue (%s): %s</li>", issue.Severity, issue.Title)
		}
		b.WriteString("</ul>")
	}

	b.WriteString("<p>Please upload the missing documents or reply with the requested information.</p>")
	b.WriteString("</div>")

	m.SetBody("text/html", b.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send digest to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Digest sent to %s\n", toEmail)
	return nil
}
