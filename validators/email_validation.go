package validators

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func sendEmail(toName, toEmail, subject, plainText string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Debug().Str("to", toEmail).Msg("SENDGRID_API_KEY not set, skipping email")
		return nil
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "no-reply@clinica.local"
	}

	from := mail.NewEmail("Clínica", fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, plainText)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded with status %d", response.StatusCode)
	}
	return nil
}

// SendBookingReceipt mails the visitor after a booking request is stored.
func SendBookingReceipt(email, fullName, specialty string, when time.Time) error {
	body := fmt.Sprintf(
		"Hola %s,\n\nHemos recibido tu solicitud de cita de %s para el %s.\n\nTe contactaremos para confirmarla.\n\nClínica",
		fullName, specialty, when.Format("02/01/2006 15:04"))
	return sendEmail(fullName, email, "Hemos recibido tu solicitud de cita", body)
}

// SendDoctorWelcome mails a newly provisioned doctor account.
func SendDoctorWelcome(email, fullName string) error {
	body := fmt.Sprintf(
		"Hola %s,\n\nTu cuenta de doctor ha sido creada. Ya puedes acceder al panel de administración con tu correo.\n\nClínica",
		fullName)
	return sendEmail(fullName, email, "Tu cuenta ha sido creada", body)
}
