package constants

// NATS Subjects
const (
	// Credit ledger
	SubjectCreditsDebited  = "credits.debited"
	SubjectCreditsCredited = "credits.credited"

	// Payment gateway
	SubjectPaymentCompleted = "payment.completed"
	SubjectPaymentFailed    = "payment.failed"
)
