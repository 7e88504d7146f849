package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"
)

// CheckoutSession carries everything the hosted checkout widget needs
// to collect a payment. Amount is in paise (minor currency units).
type CheckoutSession struct {
	Key            string `json:"key"`
	GatewayOrderID string `json:"gateway_order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PrefillName    string `json:"prefill_name"`
	PrefillEmail   string `json:"prefill_email"`
}

// Gateway is the payment collaborator. The widget's asynchronous
// success callback maps to a later VerifySignature call carrying the
// payment id; failure or dismissal simply never confirms.
type Gateway interface {
	// CreateCheckout opens a gateway order for the given whole-rupee
	// total. Conversion to paise happens here and must not be skipped.
	CreateCheckout(totalRupees int, prefillName, prefillEmail string) (*CheckoutSession, error)
	// VerifySignature checks the gateway's HMAC over a captured payment.
	VerifySignature(gatewayOrderID, paymentID, signature string) error
}

// ErrBadSignature means the confirmation did not come from the gateway.
var ErrBadSignature = errors.New("payment signature verification failed")

const displayName = "Mama's Café"

// RazorpayGateway talks to the hosted Razorpay checkout.
type RazorpayGateway struct {
	keyID     string
	keySecret string
	client    *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		client:    razorpay.NewClient(keyID, keySecret),
	}
}

func (g *RazorpayGateway) CreateCheckout(totalRupees int, prefillName, prefillEmail string) (*CheckoutSession, error) {
	// Razorpay amounts are in the smallest currency unit
	amount := int64(totalRupees) * 100

	data := map[string]interface{}{
		"amount":   amount,
		"currency": "INR",
		"receipt":  "receipt_" + uuid.NewString(),
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}
	id, _ := order["id"].(string)
	if id == "" {
		return nil, errors.New("gateway order response missing id")
	}

	return &CheckoutSession{
		Key:            g.keyID,
		GatewayOrderID: id,
		Amount:         amount,
		Currency:       "INR",
		Name:           displayName,
		Description:    "Payment for your order",
		PrefillName:    prefillName,
		PrefillEmail:   prefillEmail,
	}, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with
// the key secret and compares it to the signature the widget returned.
func (g *RazorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) error {
	expected := SignPayment(g.keySecret, gatewayOrderID, paymentID)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		return ErrBadSignature
	}
	return nil
}

// SignPayment produces the gateway's payment signature for a captured
// payment. Exposed so tests can build valid confirmations.
func SignPayment(secret, gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
