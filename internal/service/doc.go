// Package service contains the application use cases. It sits between the
// HTTP delivery layer and the lunisolar domain package: handlers depend on the
// ConversionService interface defined here, and the implementation delegates
// the calendar arithmetic to internal/domain/lunisolar while adding structured
// logging around each conversion.
package service
