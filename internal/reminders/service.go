package reminders

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/NovaSalonTech/salon-scheduler/internal/config"
	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

// Service runs the two background jobs: SMS reminders for tomorrow's
// confirmed appointments, and the hourly sweep that flags stale pending
// appointments as no_show.
type Service struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
	loc    *time.Location
}

func New(db *gorm.DB, cfg *config.Config) *Service {
	s := &Service{
		db:   db,
		from: cfg.TwilioFromNumber,
		loc:  cfg.Location(),
	}

	if cfg.TwilioAccountSID != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return s
}

func (s *Service) Start() {
	c := cron.New(cron.WithLocation(s.loc))

	c.AddFunc("0 9 * * *", s.SendDailyReminders)
	c.AddFunc("@hourly", s.SweepNoShows)

	c.Start()
	log.Println("reminder scheduler started")
}

// SendDailyReminders texts every client with a confirmed appointment
// tomorrow. Walk-ins without a phone on file are skipped.
func (s *Service) SendDailyReminders() {
	if s.client == nil {
		return
	}

	now := time.Now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	var appts []models.Appointment
	if err := s.db.
		Preload("Client").
		Preload("Service").
		Where(
			"status = ? AND start_time >= ? AND start_time < ?",
			string(domain.StatusConfirmed), start, end,
		).
		Find(&appts).Error; err != nil {
		log.Printf("reminders: failed to load appointments: %v", err)
		return
	}

	sent := 0
	for _, ap := range appts {
		phone := ap.WalkInPhone
		name := ap.WalkInName
		if ap.Client != nil {
			phone = ap.Client.Phone
			name = ap.Client.Name
		}
		if phone == "" {
			continue
		}

		body := fmt.Sprintf(
			"Hi %s, a reminder of your %s appointment tomorrow at %s.",
			name, ap.Service.Name, ap.StartTime.In(s.loc).Format("15:04"),
		)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(phone)
		params.SetFrom(s.from)
		params.SetBody(body)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			log.Printf("reminders: sms to %s failed: %v", phone, err)
			continue
		}
		sent++
	}

	log.Printf("reminders: %d/%d sent", sent, len(appts))
}

// noShowGrace is how long past its start a pending appointment may sit
// before the sweep flags it.
const noShowGrace = 30 * time.Minute

// SweepNoShows flags pending appointments whose start has passed. Going
// through the domain transition keeps the lifecycle rules authoritative.
func (s *Service) SweepNoShows() {
	now := time.Now().In(s.loc)
	cutoff := now.Add(-noShowGrace)

	var stale []models.Appointment
	if err := s.db.
		Where("status = ? AND start_time < ?", string(domain.StatusPending), cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("no-show sweep: query failed: %v", err)
		return
	}

	for i := range stale {
		ap := &stale[i]
		if err := domain.Transition(ap, domain.StatusNoShow, now); err != nil {
			continue
		}
		if err := s.db.Save(ap).Error; err != nil {
			log.Printf("no-show sweep: failed to update appointment %d: %v", ap.ID, err)
		}
	}

	if len(stale) > 0 {
		log.Printf("no-show sweep: flagged %d stale appointments", len(stale))
	}
}
