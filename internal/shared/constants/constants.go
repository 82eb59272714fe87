// Package constants defines shared application constants.
package constants

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys for request-scoped values
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyClientID = "client_id"
)

// Table names
const (
	TableUsers          = "users"
	TableClients        = "clients"
	TablePlans          = "plans"
	TableFeatures       = "features"
	TablePlanFeatures   = "plan_features"
	TableClientSettings = "client_settings"
	TableMessages       = "messages"
	TableAutoReplies    = "auto_replies"
)
