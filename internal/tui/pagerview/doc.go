// Package pagerview renders a pager.Control as a Bubble Tea component.
//
// The component is a pure view over (current page, total pages). Pressing a
// button never changes the page directly: it emits a PageRequestedMsg and the
// owning view decides what the new page is, then calls SetPage.
package pagerview
