package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"awesome-portfolio/config"
)

type contactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact acknowledges every submission. Delivery by email is best effort
// and happens off the request path; a misconfigured SMTP setup never turns
// into a visitor-facing error.
func (h *PortfolioHandler) Contact(c *gin.Context) {
	var msg contactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		log.Printf("contact: unparseable body: %v", err)
	}

	ref := uuid.NewString()
	go func() {
		if err := sendContactEmail(h.Config, msg); err != nil {
			log.Printf("contact %s: email not sent: %v", ref, err)
		} else {
			log.Printf("contact %s: email sent from %s (%s)", ref, msg.Name, msg.Email)
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Message received!",
		"reference": ref,
	})
}

func sendContactEmail(cfg *config.Config, msg contactMessage) error {
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	if cfg.ContactEmail == "" {
		return fmt.Errorf("TO_EMAIL not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	mail := []byte("To: " + cfg.ContactEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.SMTPUser + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	return smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.SMTPUser, []string{cfg.ContactEmail}, mail)
}
