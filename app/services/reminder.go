package services

import (
	"database/sql"
	"fmt"
	"log"
	"net/smtp"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/fees"
)

// StartReminderScheduler starts the background task scheduler. Once per day,
// in the morning, families whose membership has lapsed or is about to are
// sent a reminder email.
func StartReminderScheduler(db *sql.DB) {
	go func() {
		log.Println("Reminder scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		var lastRun string
		for range ticker.C {
			now := time.Now()

			// Trigger at 07:30, once per calendar day
			if now.Hour() == 7 && now.Minute() == 30 && lastRun != now.Format("2006-01-02") {
				lastRun = now.Format("2006-01-02")
				log.Println("Triggering scheduled tasks [07:30]...")

				if err := SendPaymentReminders(db); err != nil {
					log.Printf("Error sending payment reminders: %v", err)
				}
			}
		}
	}()
}

// SendPaymentReminders emails every family with an address whose standing is
// lapsed or expiring. Send failures are logged per family and do not stop
// the run.
func SendPaymentReminders(db *sql.DB) error {
	families, err := database.ListFamilies(db, "")
	if err != nil {
		return fmt.Errorf("failed to load families: %v", err)
	}

	smtpCfg := config.AppConfig.SMTP
	if smtpCfg.Username == "" {
		log.Println("SMTP not configured, skipping payment reminders")
		return nil
	}

	today := time.Now()
	sent := 0
	for _, f := range families {
		if f.Email == "" {
			continue
		}

		var paidUntil string
		if p := fees.LatestPayment(f.Payments); p != nil {
			paidUntil = p.PaidUntil
		}
		status := fees.ResolveStatus(paidUntil, today)
		if status.Label != fees.LabelLapsed && status.Label != fees.LabelExpiringSoon {
			continue
		}

		if err := sendReminderMail(smtpCfg, f.Email, f.Surname, status.Label, paidUntil); err != nil {
			log.Printf("Failed to send reminder to family %s: %v", f.Surname, err)
			continue
		}
		sent++
	}

	log.Printf("Payment reminders sent: %d", sent)
	return nil
}

func sendReminderMail(cfg config.SMTPConfig, to, surname, status, paidUntil string) error {
	subject := "Påminnelse om medlemsavgift"
	var body string
	if status == fees.LabelLapsed {
		body = fmt.Sprintf("Hej familjen %s,\r\n\r\nEr medlemsavgift har förfallit. Vänligen förnya ert medlemskap.", surname)
	} else {
		body = fmt.Sprintf("Hej familjen %s,\r\n\r\nErt medlemskap är giltigt till %s. Vänligen förnya er medlemsavgift i tid.", surname, paidUntil)
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", cfg.From, to, subject, body))

	addr := cfg.Host + ":" + cfg.Port
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	return smtp.SendMail(addr, auth, cfg.From, []string{to}, msg)
}
