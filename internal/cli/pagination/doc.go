// Package pagination provides the list flags shared by storefront commands.
//
// This package contains:
//   - PaginationParams: --page/--page-size and --limit/--offset parsing and validation
//   - PaginationMeta: page metadata reported with json and yaml output
//   - Sorter: field-based sorting for products and orders
//
// Page-based and offset-based modes are mutually exclusive. Page numbers are
// clamped the same way the interactive pager clamps them, so
// `--page 99` on a three-page list shows the last page.
package pagination
