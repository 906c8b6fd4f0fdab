/*
Package janitor chains data-cleaning verbs over a table.

Each verb does one thing: clean the column names, drop a column, transform a
column, filter rows. Verbs live in the verbs package as plain functions of the
shape (table, params) -> table. A Frame strings them together left to right:

	out, err := janitor.From(t).
		CleanNames(verbs.CleanNamesOptions{RemoveSpecial: true}).
		RemoveColumn("notes").
		TransformColumn("total_sales", registry.ElementFuncs["to_int"], "").
		FilterOn(verbs.Compare("total_sales", verbs.OpGt, 8), false).
		Table()

The first failing verb stops the chain and its error is returned by Table.

Verbs are also registered by name with the registry package, which is what
recipes and the janitor CLI use. RegisterFunctions registers everything,
including the biology verbs.
*/
package janitor
