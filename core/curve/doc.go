// Package curve turns saved measures into a marginal abatement cost
// curve: it normalizes each measure's stored cost to the current carbon
// price, ranks measures ascending by that effective cost, builds the
// cumulative-abatement segments a chart consumes, and runs the greedy
// budget-to-target walk.
package curve
