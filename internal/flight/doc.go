// Package flight integrates the path of a sphere through a viscous fluid.
//
// A run is a single forward pass of semi-implicit Euler steps that ends
// when the projectile drops below the ground plane or the time budget is
// spent:
//
//   - [Simulator]: validates inputs and runs the step loop
//   - [Trajectory]: immutable output of one run
//   - [Sample]: snapshot recorded once per step
//   - [Simulator.RunAll]: independent runs evaluated concurrently
//
// # Example
//
//	s := flight.New()
//	tr, err := s.Run(physics.DefaultParams(), flight.DefaultConfig())
//
// # Thread Safety
//
// Runs share no mutable state. A Simulator may be used from several
// goroutines and a returned Trajectory may be read by any number of them.
package flight
