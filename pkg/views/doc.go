// Package views turns raw API collections into what the screens render:
// calendar marks, day agendas, financial totals and label/color pairs.
//
// Every function is pure. Inputs are never modified and malformed records are
// skipped or shown with a fallback instead of failing the whole view.
package views
