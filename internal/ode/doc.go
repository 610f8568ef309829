// Package ode provides the numerical core for column profile integration.
//
// The package defines the fundamental interfaces and types for solving an
// initial-value problem along the column axis (dX/dz = f(X, z)):
//
//   - [State]: vector holding the concentration state
//   - [System]: interface for the right-hand side of the ODE
//   - [Integrator]: single-step numerical scheme
//   - [Solver]: drives the integration across an evaluation grid
//
// # Example
//
//	sys := column.New(column.DefaultParams())
//	integ := integrators.NewRK45()
//	solver := ode.NewSolver(sys, integ)
//	result, _ := solver.Solve(ctx, x0, grid, cfg)
//
// # Thread Safety
//
// Solver instances are NOT thread-safe; create one per goroutine.
package ode
