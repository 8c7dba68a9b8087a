// Package store holds the simulated persistence backends of the
// service. There is no real database or cache anywhere: Connect and
// query methods log the steps a real client would take and always
// succeed. The health endpoint and the services exercise these
// simulations so that the wire-level behaviour of the API matches a
// fully backed deployment.
package store
