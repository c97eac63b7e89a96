package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment intent
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentIntent tracks a top-up from initiation until the gateway resolves it
type PaymentIntent struct {
	ID                   string        `json:"payment_id" db:"payment_id"`
	UserID               string        `json:"user_id" db:"user_id"`
	RequestID            string        `json:"request_id" db:"request_id"`
	InvoiceNo            string        `json:"invoice_no" db:"invoice_no"`
	AmountCredits        int           `json:"amount_credits" db:"amount_credits"`
	AmountMMK            int64         `json:"amount_mmk" db:"amount_mmk"`
	Status               PaymentStatus `json:"status" db:"status"`
	PaymentMethod        string        `json:"payment_method" db:"payment_method"`
	CreatedAt            time.Time     `json:"created_at" db:"created_at"`
	ExpiresAt            time.Time     `json:"expires_at" db:"expires_at"`
	UpdatedAt            *time.Time    `json:"updated_at,omitempty" db:"updated_at"`
	TransactionID        *string       `json:"transaction_id,omitempty" db:"transaction_id"`
	TransactionReference *string       `json:"transaction_reference,omitempty" db:"transaction_reference"`
	RespCode             *string       `json:"resp_code,omitempty" db:"resp_code"`
	RespDescription      *string       `json:"resp_description,omitempty" db:"resp_description"`
}

// IsExpired reports whether a still-pending intent has outlived its expiry
func (p *PaymentIntent) IsExpired(now time.Time) bool {
	return p.Status == PaymentStatusPending && !now.Before(p.ExpiresAt)
}

// EffectiveStatus is the status callers must act on: an expired pending
// intent is terminally failed even though no callback resolved it
func (p *PaymentIntent) EffectiveStatus(now time.Time) PaymentStatus {
	if p.IsExpired(now) {
		return PaymentStatusFailed
	}
	return p.Status
}

// PaymentStatusView is the body of GET /payment/status/:id
type PaymentStatusView struct {
	Payment         *PaymentIntent `json:"payment"`
	EffectiveStatus PaymentStatus  `json:"effective_status"`
	Expired         bool           `json:"expired"`
}

// InitiateRequest is the payload of POST /payment/initiate
type InitiateRequest struct {
	Amount        int    `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}

// InitiateResponse carries everything the client needs to post to the gateway
type InitiateResponse struct {
	PaymentURL string      `json:"payment_url"`
	FormData   GatewayForm `json:"form_data"`
	PaymentID  string      `json:"payment_id"`
}

// GatewayField is a single named value of a gateway request
type GatewayField struct {
	Name  string
	Value string
}

// GatewayForm is an ordered set of gateway fields. Order is part of the
// signing contract, so it marshals as a JSON object preserving it.
type GatewayForm []GatewayField

// Values returns the field values in order
func (f GatewayForm) Values() []string {
	values := make([]string, len(f))
	for i, field := range f {
		values[i] = field.Value
	}
	return values
}

// Get returns the value of the named field
func (f GatewayForm) Get(name string) (string, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// MarshalJSON writes the fields as a JSON object in their contract order
func (f GatewayForm) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GatewayAmount is a settlement amount as carried by the gateway. It accepts
// JSON numbers, JSON strings and form values, and renders like a float:
// integral amounts keep one decimal ("1000.0"), others drop trailing zeros.
type GatewayAmount struct {
	decimal.Decimal
}

// NewGatewayAmount builds an amount from minor currency units
func NewGatewayAmount(units int64) GatewayAmount {
	return GatewayAmount{Decimal: decimal.NewFromInt(units)}
}

// String renders the amount as used in the signing string
func (a GatewayAmount) String() string {
	if a.Decimal.Equal(a.Decimal.Truncate(0)) {
		return a.Decimal.StringFixed(1)
	}
	return a.Decimal.String()
}

// UnmarshalJSON accepts both quoted and bare numbers
func (a *GatewayAmount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// MarshalJSON writes the amount as a JSON number
func (a GatewayAmount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalParam lets echo bind the amount from form values
func (a *GatewayAmount) UnmarshalParam(param string) error {
	d, err := decimal.NewFromString(param)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

// PaymentCallback is the asynchronous result posted by the gateway
type PaymentCallback struct {
	MerchantUserID             string        `json:"merchant_user_id" form:"merchant_user_id"`
	RequestID                  string        `json:"request_id" form:"request_id"`
	PaymentMethod              string        `json:"payment_method" form:"payment_method"`
	Amount                     GatewayAmount `json:"amount" form:"amount"`
	Currency                   string        `json:"currency" form:"currency"`
	InvoiceNo                  string        `json:"invoice_no" form:"invoice_no"`
	TransactionReferenceNumber string        `json:"transaction_reference_number" form:"transaction_reference_number"`
	TransactionID              string        `json:"transaction_id" form:"transaction_id"`
	RespCode                   string        `json:"resp_code" form:"resp_code"`
	RespDescription            string        `json:"resp_description" form:"resp_description"`
	Signature                  string        `json:"signature" form:"signature"`
}

// SignedValues returns the callback fields in the gateway's signing order
func (cb *PaymentCallback) SignedValues() []string {
	return []string{
		cb.MerchantUserID,
		cb.RequestID,
		cb.PaymentMethod,
		cb.Amount.String(),
		cb.Currency,
		cb.InvoiceNo,
		cb.TransactionReferenceNumber,
		cb.TransactionID,
		cb.RespCode,
		cb.RespDescription,
	}
}

// PaymentResolution is the terminal update applied to a pending intent
type PaymentResolution struct {
	RequestID            string
	Status               PaymentStatus
	TransactionID        string
	TransactionReference string
	RespCode             string
	RespDescription      string
	ResolvedAt           time.Time
}

// CallbackResult reports what a callback did to its intent
type CallbackResult struct {
	Intent  *PaymentIntent
	Applied bool // false when the intent was already resolved
	Credit  *LedgerResult
}

// PaymentEvent is published after an intent reaches a terminal state
type PaymentEvent struct {
	PaymentID     string        `json:"payment_id"`
	UserID        string        `json:"user_id"`
	RequestID     string        `json:"request_id"`
	Status        PaymentStatus `json:"status"`
	AmountCredits int           `json:"amount_credits"`
	AmountMMK     int64         `json:"amount_mmk"`
	RespCode      string        `json:"resp_code"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
