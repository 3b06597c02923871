package domain

import "time"

// ActivityKind names an auth-flow action recorded in the activity trail.
type ActivityKind string

const (
	ActivityLogin          ActivityKind = "login"
	ActivityLoginFailed    ActivityKind = "login_failed"
	ActivityLogout         ActivityKind = "logout"
	ActivitySignup         ActivityKind = "signup"
	ActivityForgotPassword ActivityKind = "forgot_password"
	ActivityResetPassword  ActivityKind = "reset_password"
)

// ActivityEvent is a single auth action observed by the portal.
type ActivityEvent struct {
	Kind      ActivityKind `json:"kind"`
	Email     string       `json:"email"`
	Timestamp time.Time    `json:"timestamp"`
}
