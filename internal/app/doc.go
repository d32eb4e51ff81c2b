// Package app wires configuration, clients and output together for each CLI command.
// Every Execute function builds the clients it needs, runs one request and writes
// the decoded result as JSON or YAML; the Fetch and Run functions hold the logic
// and take their collaborators as interfaces so they can be tested with mocks.
package app
