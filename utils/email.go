package utils

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SendPasswordResetEmail simulates sending a password reset email. In a real
// deployment this would use an email service provider.
func SendPasswordResetEmail(email, token string) error {
	resetLink := fmt.Sprintf("http://localhost:8080/reset-password-page?token=%s", token)

	logrus.WithFields(logrus.Fields{
		"to":      email,
		"subject": "Reset Your Password",
	}).Infof("SIMULATED EMAIL: to reset your password, click %s", resetLink)

	return nil
}

// SendOrderConfirmationEmail simulates the order confirmation notice sent
// when an order is placed.
func SendOrderConfirmationEmail(email, orderNumber string, total float64) error {
	logrus.WithFields(logrus.Fields{
		"to":      email,
		"subject": "Order Confirmation " + orderNumber,
	}).Infof("SIMULATED EMAIL: your order %s has been received, total %.2f", orderNumber, total)

	return nil
}

// SendOrderStatusEmail simulates the notice sent to the order's owner when
// an admin changes the order status.
func SendOrderStatusEmail(email, orderNumber, status string) error {
	logrus.WithFields(logrus.Fields{
		"to":      email,
		"subject": "Order Update " + orderNumber,
	}).Infof("SIMULATED EMAIL: your order %s is now %s", orderNumber, status)

	return nil
}
