// Nordics Gateway is the security middleware layer for the Nordics
// community website backend.
//
// It fronts the JSON API with schema validation, per-client rate limiting,
// and a hardened security header set on every response.
//
// Usage:
//
//	# Start the gateway with the default configuration file
//	nordics-gateway run
//
//	# Start with a custom configuration file
//	nordics-gateway run --config /etc/nordics/gateway.yaml
//
//	# Validate a configuration file without starting
//	nordics-gateway validate --config /etc/nordics/gateway.yaml
//
//	# Show version information
//	nordics-gateway version
package main

func main() {
	Execute()
}
