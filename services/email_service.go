package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(host string, port int, username, password, from string) *EmailService {
	return &EmailService{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendInvoice dispatches the invoice mail on a detached goroutine. A slow or
// unreachable SMTP backend never blocks the status update; failures only get
// logged.
func (s *EmailService) SendInvoice(o *entity.Order) {
	go func() {
		if err := s.send(o); err != nil {
			log.Printf("[EMAIL] invoice for %s to %s failed: %v", o.OrderID, o.UserEmail, err)
			return
		}
		log.Printf("[EMAIL] invoice for %s sent to %s", o.OrderID, o.UserEmail)
	}()
}

func (s *EmailService) send(o *entity.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", o.UserEmail)
	m.SetHeader("Subject", "Your Mathews Kitchen Invoice - "+o.OrderID)
	m.SetBody("text/html", invoiceBody(o))
	return s.dialer.DialAndSend(m)
}

func invoiceBody(o *entity.Order) string {
	var b strings.Builder
	b.WriteString("<h2>Mathews Kitchen</h2>")
	fmt.Fprintf(&b, "<p>Hi %s, your order <b>%s</b> has been delivered.</p>", o.Name, o.OrderID)
	b.WriteString("<table border='1' cellpadding='6' cellspacing='0'>")
	b.WriteString("<tr><th>Item</th><th>Qty</th><th>Price</th></tr>")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%.2f</td></tr>", it.FoodName, it.Quantity, it.PriceAtOrder)
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Subtotal: %.2f<br/>Discount: %.2f<br/>GST: %.2f<br/>Delivery Fee: %.2f<br/><b>Total Paid: %.2f</b></p>",
		o.TotalAmount, o.Discount, o.Gst, o.DeliveryFee, o.FinalAmount)
	fmt.Fprintf(&b, "<p>Delivery address: %s</p>", o.Address)
	b.WriteString("<p>Thank you for ordering with us!</p>")
	return b.String()
}
