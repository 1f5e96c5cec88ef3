package notification

import (
	"context"
	"fmt"

	partyRepo "partypilot/database/repository/party"
	supplierRepo "partypilot/database/repository/supplier"
	"partypilot/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendCustomerPushNotification(ctx context.Context, partyID, title, body string, data map[string]string) error
	SendSupplierPushNotification(ctx context.Context, supplierID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Parties   partyRepo.PartyRepository
	Suppliers supplierRepo.SupplierRepository
}

func NewDefaultNotificationService(
	parties partyRepo.PartyRepository,
	suppliers supplierRepo.SupplierRepository,
) (*DefaultNotificationService, error) {
	if parties == nil || suppliers == nil {
		return nil, fmt.Errorf("notification service initialization error: party or supplier repository is nil")
	}
	return &DefaultNotificationService{
		Parties:   parties,
		Suppliers: suppliers,
	}, nil
}

// SendCustomerPushNotification looks up the party owner's FCM token and
// sends a push.
func (s *DefaultNotificationService) SendCustomerPushNotification(
	ctx context.Context,
	partyID, title, body string,
	data map[string]string,
) error {
	party, err := s.Parties.GetByID(partyID)
	if err != nil {
		return fmt.Errorf("SendCustomerPushNotification: could not find party %s: %w", partyID, err)
	}
	token := party.CustomerFCMToken
	if token == "" {
		return fmt.Errorf("SendCustomerPushNotification: party %s has no customer FCM token", partyID)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "customer"
	}

	return send(ctx, token, title, body, data)
}

func (s *DefaultNotificationService) SendSupplierPushNotification(
	ctx context.Context,
	supplierID, title, body string,
	data map[string]string,
) error {
	supplier, err := s.Suppliers.GetByID(supplierID)
	if err != nil {
		return fmt.Errorf("SendSupplierPushNotification: could not find supplier %s: %w", supplierID, err)
	}
	token := supplier.FCMToken
	if token == "" {
		return fmt.Errorf("SendSupplierPushNotification: supplier %s has no FCM token", supplierID)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "supplier"
	}

	return send(ctx, token, title, body, data)
}

func send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}

	utils.GetLogger().Debug("Sent FCM message", zap.String("response", response))
	return nil
}
