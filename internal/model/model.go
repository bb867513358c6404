package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries per-request caller identity resolved by the auth layer.
// The interpretation pipeline itself is stateless; the scope exists for
// logging and for collaborators above this subsystem.
type Scope struct {
	UserID string
}
