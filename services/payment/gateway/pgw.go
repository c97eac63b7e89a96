package gateway

import (
	"strconv"
	"strings"
	"time"

	"github.com/piresc/lotaya/internal/pkg/constants"
	"github.com/piresc/lotaya/internal/pkg/models"
	"github.com/piresc/lotaya/internal/pkg/signature"
)

// Field names of the gateway payment request, in signing order
const (
	FieldMerchantUserID          = "MerchantUserID"
	FieldAccessKey               = "AccessKey"
	FieldChannel                 = "Channel"
	FieldRequestID               = "RequestID"
	FieldPaymentMethod           = "PaymentMethod"
	FieldAmount                  = "Amount"
	FieldCurrency                = "Currency"
	FieldInvoiceNo               = "InvoiceNo"
	FieldBillToAddressLine1      = "BillToAddressLine1"
	FieldBillToAddressLine2      = "BillToAddressLine2"
	FieldBillToAddressCity       = "BillToAddressCity"
	FieldBillToAddressPostalCode = "BillToAddressPostalCode"
	FieldBillToAddressState      = "BillToAddressState"
	FieldBillToAddressCountry    = "BillToAddressCountry"
	FieldBillToForename          = "BillToForename"
	FieldBillToSurname           = "BillToSurname"
	FieldBillToPhone             = "BillToPhone"
	FieldBillToEmail             = "BillToEmail"
	FieldExpiredInSeconds        = "ExpiredInSeconds"
	FieldRemark                  = "Remark"
	FieldSignedDateTime          = "SignedDateTime"
	FieldSignature               = "Signature"
)

const (
	defaultForename = "User"
	defaultSurname  = "Name"
	defaultCurrency = "MMK"
)

var myanmarTime = time.FixedZone("MMT", constants.PGWTimezoneOffset)

// BaseURL returns the gateway host of the environment, UAT unless production
func BaseURL(env string) string {
	if strings.EqualFold(env, constants.PGWEnvProduction) {
		return constants.PGWBaseURLProduction
	}
	return constants.PGWBaseURLUAT
}

// PGWGateway builds and verifies signed gateway messages
type PGWGateway struct {
	cfg    models.PGWConfig
	signer *signature.Signer
}

// NewPGWGateway creates a new payment gateway client
func NewPGWGateway(cfg models.PGWConfig) *PGWGateway {
	return &PGWGateway{
		cfg:    cfg,
		signer: signature.NewSigner(cfg.SecretKey),
	}
}

// PaymentURL is where the client posts the signed form
func (g *PGWGateway) PaymentURL() string {
	return BaseURL(g.cfg.Env) + constants.PGWPaymentRequestPath
}

// BuildPaymentForm returns the ordered request fields for intent with the
// signature appended last
func (g *PGWGateway) BuildPaymentForm(intent *models.PaymentIntent, user *models.User, signedAt time.Time) models.GatewayForm {
	forename, surname := splitName(user.Name)
	billing := g.cfg.Billing

	form := models.GatewayForm{
		{Name: FieldMerchantUserID, Value: g.cfg.MerchantUserID},
		{Name: FieldAccessKey, Value: g.cfg.AccessKey},
		{Name: FieldChannel, Value: g.cfg.Channel},
		{Name: FieldRequestID, Value: intent.RequestID},
		{Name: FieldPaymentMethod, Value: g.cfg.PaymentMethods},
		{Name: FieldAmount, Value: models.NewGatewayAmount(intent.AmountMMK).String()},
		{Name: FieldCurrency, Value: g.currency()},
		{Name: FieldInvoiceNo, Value: intent.InvoiceNo},
		{Name: FieldBillToAddressLine1, Value: billing.AddressLine1},
		{Name: FieldBillToAddressLine2, Value: billing.AddressLine2},
		{Name: FieldBillToAddressCity, Value: billing.City},
		{Name: FieldBillToAddressPostalCode, Value: billing.PostalCode},
		{Name: FieldBillToAddressState, Value: billing.State},
		{Name: FieldBillToAddressCountry, Value: billing.Country},
		{Name: FieldBillToForename, Value: forename},
		{Name: FieldBillToSurname, Value: surname},
		{Name: FieldBillToPhone, Value: billing.Phone},
		{Name: FieldBillToEmail, Value: user.Email},
		{Name: FieldExpiredInSeconds, Value: strconv.Itoa(g.expirySeconds(intent))},
		{Name: FieldRemark, Value: "Credit top-up: " + strconv.Itoa(intent.AmountCredits) + " credits"},
		{Name: FieldSignedDateTime, Value: signedAt.In(myanmarTime).Format(constants.PGWSignedDateTimeLayout)},
	}

	return append(form, models.GatewayField{Name: FieldSignature, Value: g.signer.Sign(form.Values())})
}

// VerifyCallback checks the callback signature over its canonical fields
func (g *PGWGateway) VerifyCallback(cb *models.PaymentCallback) bool {
	return g.signer.Verify(cb.SignedValues(), cb.Signature)
}

func (g *PGWGateway) currency() string {
	if g.cfg.Currency != "" {
		return g.cfg.Currency
	}
	return defaultCurrency
}

func (g *PGWGateway) expirySeconds(intent *models.PaymentIntent) int {
	if g.cfg.ExpirySeconds > 0 {
		return g.cfg.ExpirySeconds
	}
	return int(intent.ExpiresAt.Sub(intent.CreatedAt).Seconds())
}

// splitName derives the bill-to forename and surname from a display name
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	forename, surname := defaultForename, defaultSurname
	if len(parts) > 0 {
		forename = parts[0]
	}
	if len(parts) > 1 {
		surname = parts[len(parts)-1]
	}
	return forename, surname
}
