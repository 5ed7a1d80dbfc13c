// Package listview provides a cursor list for Bubble Tea views.
//
// The list holds one page of rows. Only the rows that fit the viewport are
// rendered, and the viewport scrolls to keep the cursor visible. Paging
// between server pages is the owner's job; the list only moves within the
// rows it was given.
package listview
