package backlight

// Actuator adjusts display brightness to a fraction of the panel maximum.
// Apply is synchronous and bounded; a failure is reported to the caller,
// never fatal to the process.
type Actuator interface {
	Apply(factor float64) error
}
