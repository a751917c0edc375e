package environment

// Environment represents the runtime environment an application is
// executing in.
type Environment string

const (
	// Development for local development.
	Development Environment = "development"
	// Production for live deployments.
	Production Environment = "production"
	// Staging for pre-production deployments.
	Staging Environment = "staging"
	// Test for automated test runs.
	Test Environment = "test"
)

// All returns the recognized environments in their canonical order.
func All() []Environment {
	return []Environment{Development, Production, Staging, Test}
}

// Parse returns the Environment matching s. Only the four canonical
// lowercase names are recognized; anything else reports false. Detection
// pipelines rely on this exact-match contract, so no alias or case
// normalization happens here.
func Parse(s string) (Environment, bool) {
	env := Environment(s)
	if env.Valid() {
		return env, true
	}
	return "", false
}

// Valid reports whether e is one of the four recognized environments.
func (e Environment) Valid() bool {
	switch e {
	case Development, Production, Staging, Test:
		return true
	}
	return false
}

func (e Environment) String() string {
	return string(e)
}
