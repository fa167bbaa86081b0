// Package domain holds the value objects and the error taxonomy shared by the
// stress engine.
//
// Everything here is pure data: no I/O, no logging, no unit conversion.
// Lengths are millimetres, pressures, stresses and moduli are megapascals.
package domain
