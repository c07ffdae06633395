package dto

import (
	"time"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// SubscribeRequest starts or upgrades a paid subscription.
type SubscribeRequest struct {
	Plan         domain.Plan         `json:"plan" binding:"required,oneof=starter organisation"`
	BillingCycle domain.BillingCycle `json:"billingCycle" binding:"required,oneof=monthly annual"`
	GatewayRef   string              `json:"gatewayRef" binding:"omitempty,max=100"`
}

// SubscriptionResponse defines data returned for a subscription.
type SubscriptionResponse struct {
	SubscriptionID string                    `json:"subscriptionID"`
	AccountID      string                    `json:"accountID"`
	Plan           domain.Plan               `json:"plan"`
	Status         domain.SubscriptionStatus `json:"status"`
	BillingCycle   domain.BillingCycle       `json:"billingCycle"`
	PeriodStart    time.Time                 `json:"periodStart"`
	PeriodEnd      time.Time                 `json:"periodEnd"`
}

// ToSubscriptionResponse converts domain.Subscription to DTO.
func ToSubscriptionResponse(s *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID: s.SubscriptionID,
		AccountID:      s.AccountID,
		Plan:           s.Plan,
		Status:         s.Status,
		BillingCycle:   s.BillingCycle,
		PeriodStart:    s.PeriodStart,
		PeriodEnd:      s.PeriodEnd,
	}
}

// PaymentWebhookRequest is the payload the payment gateway posts back.
type PaymentWebhookRequest struct {
	Event      string `json:"event" binding:"required,oneof=payment.succeeded payment.failed subscription.expired"`
	GatewayRef string `json:"gatewayRef" binding:"required"`
}
