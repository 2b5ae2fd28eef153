// Package weavetest provides mocks and helpers for testing handlers,
// decorators and whole applications built on top of bazaar.
package weavetest
