package constants

// Payment gateway environments and endpoints
const (
	PGWEnvUAT        = "UAT"
	PGWEnvProduction = "PRODUCTION"

	PGWBaseURLUAT        = "https://uatpgw.transactease.com.mm"
	PGWBaseURLProduction = "https://pgw.transactease.com.mm"

	PGWPaymentRequestPath = "/payment/request"

	// PGWSuccessCode is the resp_code the gateway reports for a settled payment
	PGWSuccessCode = "000"

	// PGWSignedDateTimeLayout renders timestamps in Myanmar time (UTC+06:30)
	PGWSignedDateTimeLayout = "2006-01-02T15:04:05-07:00"
	PGWTimezoneOffset       = 6*3600 + 30*60
)
