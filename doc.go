// Package renda projects and compares two fixed-income instruments over a
// common horizon: it derives monthly reference curves from annual macro
// projections, schedules coupons under category-specific calendar rules,
// converts annual rates to period rates under calendar-day and business-day
// conventions, applies the regressive withholding table, reinvests net
// coupons at the projected reference rate, and reconciles two assets with
// different maturities onto one comparison date.
//
// Every run is a pure function of its input snapshot (two AssetConfig, one
// MacroProjection): no shared state, no I/O, results regenerated from
// scratch whenever an input changes.
package renda
