package utils

import (
	"fmt"
	"log"

	"docutrack/config"
	"docutrack/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Generic Send Email
func SendEmail(toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("Skipping email to %s: SENDGRID_API_KEY not configured", toEmail)
		return nil
	}

	from := mail.NewEmail("DocuTrack - Registro Civil", config.AppConfig.EmailSender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}

// SendApprovalEmail notifies the requester that their certificate is ready for
// download. Called in a goroutine; failures are logged and never affect the
// approval itself.
func SendApprovalEmail(sol models.Solicitud) {
	subject := fmt.Sprintf("Solicitud %s aprobada", sol.Numero)
	body := getEmailTemplate("Tu certificado está listo", fmt.Sprintf(`
		<p>La solicitud <strong>%s</strong> para el certificado de nacimiento de
		<strong>%s</strong> fue aprobada.</p>
		<div class="info-box">Ya puedes descargar el certificado desde la pestaña
		"Descargar PDF" de tu panel.</div>
	`, sol.Numero, sol.Persona))

	if err := SendEmail(sol.Datos.EmailSolicitante, subject, body); err != nil {
		log.Printf("Error sending approval email for %s: %v", sol.Numero, err)
		return
	}
	log.Printf("Approval email sent for %s", sol.Numero)
}

// HTML Wrapper so every notification shares the same look
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1E1B4B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E1B4B; line-height: 1.6; }
			.content h2 { color: #1E1B4B; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6D28D9; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>DOCUTRACK</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Registro Civil - Certificados de Nacimiento<br>
				Este es un mensaje automático, no respondas a este correo.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
