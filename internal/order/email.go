package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/yolimar-textil/storefront-api/internal/models"
)

// MailNotifier sends the seller a plain-text copy of each order via
// SendGrid. A notifier without an API key is a no-op.
type MailNotifier struct {
	apiKey  string
	from    string
	company Company
	log     *slog.Logger
}

// NewMailNotifier creates a mail notifier for the company address.
func NewMailNotifier(apiKey, from string, company Company, log *slog.Logger) *MailNotifier {
	return &MailNotifier{
		apiKey:  apiKey,
		from:    from,
		company: company,
		log:     log,
	}
}

// Enabled reports whether a SendGrid key is configured.
func (n *MailNotifier) Enabled() bool {
	return n.apiKey != ""
}

// NotifySeller emails the order summary to the company address.
func (n *MailNotifier) NotifySeller(ctx context.Context, summary *models.OrderSummary) error {
	if !n.Enabled() {
		return nil
	}

	body := sellerMailBody(summary)
	fromEmail := mail.NewEmail(n.company.Name, n.from)
	toEmail := mail.NewEmail("", n.company.Email)
	subject := "NUEVO PEDIDO: " + summary.OrderCode

	message := mail.NewSingleEmail(fromEmail, subject, toEmail, body,
		fmt.Sprintf("<pre>%s</pre>", body))

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s",
			response.StatusCode, response.Body)
	}

	n.log.Info("seller notified by mail",
		"order_code", summary.OrderCode,
		"status", response.StatusCode,
	)
	return nil
}

// sellerMailBody renders the plain-text order the seller receives.
func sellerMailBody(summary *models.OrderSummary) string {
	var b strings.Builder

	b.WriteString("NUEVO PEDIDO\n\n")
	fmt.Fprintf(&b, "PEDIDO #: %s\n\n", summary.OrderCode)

	b.WriteString("CLIENTE:\n")
	fmt.Fprintf(&b, "Nombre: %s\n", summary.Client.Name)
	fmt.Fprintf(&b, "Telefono: %s\n", summary.Client.Phone)
	email := summary.Client.Email
	if email == "" {
		email = "N/A"
	}
	fmt.Fprintf(&b, "Email: %s\n\n", email)

	b.WriteString("PRODUCTOS:\n")
	for i, line := range summary.Lines {
		fmt.Fprintf(&b, "%d. %s (%s) - %s/%s x%d = Bs. %d.00\n",
			i+1, line.Name, lineCode(line), colorName(line.Color), line.Size,
			line.Quantity, line.BaseTotal)
	}

	fmt.Fprintf(&b, "\nTOTAL: Bs. %d.00", summary.TotalPrice)
	return b.String()
}
