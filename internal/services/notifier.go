package services

import (
	"log"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/utils"
)

// Notifier delivers best-effort customer notifications. Implementations must
// never block a request on delivery and never surface failures to the caller;
// a lost email does not undo a committed order or status change.
type Notifier interface {
	OrderConfirmation(order models.Order, email string, receiptPDF []byte)
	OrderStatusChanged(order models.Order, email string)
	ApplicationStatusChanged(app models.JobApplication, jobRole string)
}

// MailNotifier sends over SMTP in a goroutine per notification.
type MailNotifier struct{}

func NewMailNotifier() *MailNotifier {
	return &MailNotifier{}
}

func (n *MailNotifier) OrderConfirmation(order models.Order, email string, receiptPDF []byte) {
	go func() {
		html := utils.OrderConfirmationHTML(order)
		if err := utils.SendEmail(email, "🫖 Order received - Chai Craft", html, receiptPDF, "chaicraft_receipt.pdf"); err != nil {
			log.Printf("❌ Order confirmation email failed for %s: %v", order.ID, err)
		}
	}()
}

func (n *MailNotifier) OrderStatusChanged(order models.Order, email string) {
	go func() {
		html := utils.OrderStatusHTML(order)
		if err := utils.SendEmail(email, utils.OrderStatusSubject(order), html, nil, ""); err != nil {
			log.Printf("❌ Order status email failed for %s: %v", order.ID, err)
		}
	}()
}

func (n *MailNotifier) ApplicationStatusChanged(app models.JobApplication, jobRole string) {
	go func() {
		html := utils.ApplicationStatusHTML(app, jobRole)
		if err := utils.SendEmail(app.Email, "📋 Application update - Chai Craft", html, nil, ""); err != nil {
			log.Printf("❌ Application status email failed for %s: %v", app.ID, err)
		}
	}()
}
