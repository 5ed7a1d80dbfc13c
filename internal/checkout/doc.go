// Package checkout validates payment card details before an order is paid.
package checkout
