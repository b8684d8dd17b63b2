// Package stripe wraps payment-intent creation against the Stripe API behind
// a small interface so handlers can be tested with a fake gateway.
package stripe

import (
	"context"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// IntentCreator creates a payment intent and returns its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// Client calls the live Stripe API with the account's secret key.
type Client struct{}

func NewClient(secretKey string) *Client {
	stripego.Key = secretKey
	return &Client{}
}

// CreateIntent creates a card payment intent for amount in the smallest
// currency unit and returns the client secret the frontend confirms with.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(amount),
		Currency:           stripego.String(currency),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
