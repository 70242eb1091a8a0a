// Package sqlerr turns Postgres driver errors into errs.HTTPError values.
//
// Constraint violations on catalog tables become 400s with a machine code
// such as SALE_ITEM_ALREADY_EXISTS, and missing rows become 404s named after
// the table ("Product not found").
package sqlerr
