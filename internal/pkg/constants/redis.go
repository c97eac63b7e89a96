package constants

// Redis key formats
const (
	KeyUserProfile = "user:profile:%s" // Format: user:profile:{firebase_uid}
)

// Redis hash fields
const (
	FieldUserID    = "user_id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldCredits   = "credits"
	FieldUpdatedAt = "updated_at"
)
