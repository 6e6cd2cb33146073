package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ReceiptEmailData feeds the receipt email template.
type ReceiptEmailData struct {
	OrderCode      string
	Lines          []ReceiptEmailLine
	SubTotal       float64
	DiscountAmount float64
	AmountPaid     float64
	ChangeAmount   float64
}

type ReceiptEmailLine struct {
	ProductName string
	Quantity    int
	Amount      float64
}

// SendReceiptEmail mails the receipt to the customer (async, best effort).
func SendReceiptEmail(to string, data ReceiptEmailData) {
	go func() {
		tmplPath := "templates/receipt.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Error loading receipt template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Error rendering receipt template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Your receipt #"+data.OrderCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Error sending receipt email: %v", err)
		}
	}()
}
