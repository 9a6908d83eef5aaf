// Package cart manages the in-memory shopping cart for a storefront session.
//
// # Model
//
// A Cart owns an ordered slice of Items. Insertion order is display order and
// every Add produces a distinct line item with quantity 1; identical products
// are never merged. The item count is always len(items): there is no second
// counter to keep in step.
//
// Prices arrive as display text ("£10.00"). They are parsed exactly once, in
// Add, into money.Money minor units. Text that cannot be parsed is logged at
// Warn and the item contributes zero to the total.
//
// # Rendering
//
// Two independent sinks receive state after every mutation:
//
//   - BadgeRenderer gets the count for each Location (Primary and Secondary),
//     always with the same value.
//   - ListRenderer gets the itemised lines and the formatted total.
//
// Either sink may be nil. The cart renders unconditionally; whether the cart
// dialog is visible is the sink's business.
//
// # Totals
//
// Total returns "£0" for an empty cart and two decimals otherwise
// ("£15.50"). The asymmetry is deliberate UI behaviour.
//
// # Errors
//
// Nothing here is fatal. RemoveAt with an out-of-range index is a no-op that
// returns false.
package cart
