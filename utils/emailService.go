package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// CertificateMailer emails students their freshly issued certificate link.
// It satisfies certificate.Notifier.
type CertificateMailer struct {
	apiKey string
	sender string
}

func NewCertificateMailer(apiKey, sender string) *CertificateMailer {
	return &CertificateMailer{apiKey: apiKey, sender: sender}
}

// CertificateIssued sends the certificate notification email
func (m *CertificateMailer) CertificateIssued(email, studentName, courseTitle, certificateNumber, fileURL string) error {
	from := mail.NewEmail("Serene - Plataforma Educativa", m.sender)
	to := mail.NewEmail(studentName, email)
	subject := fmt.Sprintf("Tu certificado de %s", courseTitle)

	plain := fmt.Sprintf(
		"Hola %s,\n\nHas completado el curso %s. Tu certificado N° %s está disponible en:\n%s\n\nSerene - Plataforma Educativa",
		studentName, courseTitle, certificateNumber, fileURL,
	)

	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">🏆 Certificado de Completitud</h2>
					<p style="font-size: 15px; color: #555555;">Hola <b>%s</b>,</p>
					<p style="font-size: 15px; color: #555555;">Has completado exitosamente el curso <b>%s</b>.</p>
					<div style="text-align: center; margin: 25px 0;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Tu número de certificado:</p>
						<p style="font-size: 20px; font-weight: bold; color: #2196F3;">%s</p>
						<a href="%s" style="display: inline-block; margin-top: 15px; padding: 12px 24px; background-color: #2196F3; color: #ffffff; text-decoration: none; border-radius: 6px;">Ver certificado</a>
					</div>
					<p style="font-size: 12px; color: #999999; text-align: center;">Serene - Plataforma Educativa</p>
				</div>
			</body>
		</html>`,
		studentName, courseTitle, certificateNumber, fileURL,
	)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(m.apiKey)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
