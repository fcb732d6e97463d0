package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// loginAttemptsTotal counts login attempts by result.
	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total login attempts by result",
		},
		[]string{"result"}, // result: success | failure
	)

	// registrationsTotal counts account registrations by result.
	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total account registrations by result",
		},
		[]string{"result"},
	)

	// tokenValidationsTotal counts bearer token validations by result.
	tokenValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_validations_total",
			Help: "Total bearer token validations by result",
		},
		[]string{"result"},
	)

	// passwordChangesTotal counts password change requests by result.
	passwordChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_password_changes_total",
			Help: "Total password change requests by result",
		},
		[]string{"result"},
	)
)

// RecordLoginAttempt records a login attempt outcome.
func RecordLoginAttempt(result string) {
	loginAttemptsTotal.WithLabelValues(result).Inc()
}

// RecordRegistration records a registration outcome.
func RecordRegistration(result string) {
	registrationsTotal.WithLabelValues(result).Inc()
}

// RecordTokenValidation records a token validation outcome.
func RecordTokenValidation(result string) {
	tokenValidationsTotal.WithLabelValues(result).Inc()
}

// RecordPasswordChange records a password change outcome.
func RecordPasswordChange(result string) {
	passwordChangesTotal.WithLabelValues(result).Inc()
}
