// Package tui contains the interactive Bubble Tea views of the storefront:
// the paged shop browser, the orders table and the most-popular strip.
//
// Views own their page state. The pager control in package pagerview only
// reports page requests; the owning view decides whether that means
// fetching a new page from the server (shop) or re-slicing rows it already
// holds (orders).
package tui
