package postpurchase

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/georgemunganga/awe-electronics/internal/config"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// NewSMTPSender returns a gomail dialer for cfg.
func NewSMTPSender(cfg config.SMTPConfig) Sender {
	return gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`Hi {{.Name}},

Thanks for shopping with AWE Electronics. Your order {{.Order.OrderNumber}} is being processed.
{{range .Order.Items}}
  {{.Quantity}} x {{.Name}} @ ${{printf "%.2f" .Price}}{{end}}

Subtotal: ${{printf "%.2f" .Order.Subtotal}}
Tax:      ${{printf "%.2f" .Order.Tax}}
Shipping: ${{printf "%.2f" .Order.Shipping}}
Total:    ${{printf "%.2f" .Order.Total}} paid by {{.Method}}

Shipping to: {{.Order.ShippingAddress}}
`))

// EmailNotifier sends an order confirmation to the purchasing user.
type EmailNotifier struct {
	sender Sender
	users  user.Repository
	from   string
	log    *zap.Logger
}

func NewEmailNotifier(sender Sender, users user.Repository, from string, log *zap.Logger) *EmailNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailNotifier{sender: sender, users: users, from: from, log: log}
}

func (e *EmailNotifier) Name() string { return "email-notifier" }

// Handle skips users without an email address.
func (e *EmailNotifier) Handle(_ context.Context, ev Event) error {
	u, ok := e.users.GetByID(ev.Order.UserID)
	if !ok || u.Email == "" {
		e.log.Debug("no email address for order", zap.Int("order_id", ev.Order.ID), zap.Int("user_id", ev.Order.UserID))
		return nil
	}

	var body bytes.Buffer
	err := confirmationTmpl.Execute(&body, map[string]interface{}{
		"Name":   u.Name,
		"Order":  ev.Order,
		"Method": ev.PaymentMethod,
	})
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetAddressHeader("To", u.Email, u.Name)
	m.SetHeader("Subject", "Order confirmation "+ev.Order.OrderNumber)
	m.SetBody("text/plain", body.String())

	if err := e.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", u.Email, err)
	}
	e.log.Info("order confirmation sent", zap.Int("order_id", ev.Order.ID), zap.String("to", u.Email))
	return nil
}
