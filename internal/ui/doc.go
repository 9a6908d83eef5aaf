// Package ui implements the CHASED storefront in the terminal using Bubble
// Tea. The page is a single model: header with section tabs and cart badge,
// the visible section, and modals for the cart, sell menu, image viewer,
// help, contact form and activity log. Timers from the cart feedback,
// viewer sweep and contact form run on the Bubble Tea loop through
// tickScheduler.
package ui
