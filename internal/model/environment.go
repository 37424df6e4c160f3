package model

import "strings"

// Environment is the deployment environment the service runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// ParseEnvironment normalizes a configured environment name.
// Unknown names are treated as development.
func ParseEnvironment(s string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(s))) {
	case EnvironmentProduction, "prod":
		return EnvironmentProduction
	case EnvironmentStaging:
		return EnvironmentStaging
	default:
		return EnvironmentDevelopment
	}
}
