// Package pager computes which page numbers a paginated list shows and
// translates presses on those page buttons into page-change requests.
//
// The package has three layers:
//   - Window: a pure function from (current page, total pages) to an ordered
//     sequence of tokens, collapsing long ranges with ellipses.
//   - Control: a stateless set of buttons (previous, page tokens, next) built
//     from props; pressing a button invokes the owner's callback.
//   - Slice and Carousel: helpers the owner uses to re-slice data once a page
//     change has been requested.
//
// Nothing in this package holds pagination state between calls. The owning
// view keeps the current page and rebuilds the control whenever it changes.
package pager
