// Package mock provides function-field mock implementations of shopgrid
// interfaces for use in tests.
package mock
