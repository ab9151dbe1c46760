package mailer

import (
	"fmt"
	"strings"

	"procure-ai-be/pkg/procurement/conversation"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPlanSummary(toEmail string, plan *conversation.PlanSummary) error
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

func (s *emailService) SendPlanSummary(toEmail string, plan *conversation.PlanSummary) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Procurement Plan: %d %s", plan.Quantity, plan.ProductType))

	var attrs strings.Builder
	for k, v := range plan.Attributes {
		fmt.Fprintf(&attrs, "<li><b>%s</b>: %s</li>", k, v)
	}

	wocSection := ""
	if plan.RequiresWOC {
		var woc strings.Builder
		for k, v := range plan.WOCAnswers {
			fmt.Fprintf(&woc, "<li><b>%s</b>: %s</li>", k, v)
		}
		wocSection = fmt.Sprintf(`
			<h3>Waiver of Competition Justification</h3>
			<ul>%s</ul>
		`, woc.String())
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your Procurement Plan is Ready</h2>
			<p><b>%d %s</b> for %s, delivery %s.</p>
			<ul>%s</ul>
			<h3>Valuation</h3>
			<p>Estimated value: %.0f (budget %.0f)<br>
			Recommended method: <b>%s</b></p>
			%s
			<h3>Selected Supplier</h3>
			<p><b>%s</b> - %.0f per unit, delivery in %d days, rating %.1f<br>
			Contact: %s</p>
		</div>
	`,
		plan.Quantity, plan.ProductType, plan.Location, plan.Timeline,
		attrs.String(),
		plan.ProcurementValue, plan.Budget, plan.Method,
		wocSection,
		plan.Supplier.Vendor.Name, plan.Supplier.Vendor.Price, plan.Supplier.Vendor.DeliveryDays,
		plan.Supplier.Vendor.Rating, plan.Supplier.Vendor.Contact,
	)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send plan summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Plan summary sent to %s\n", toEmail)
	return nil
}
