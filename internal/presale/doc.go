// Package presale holds the pure pricing core of the presale: supported
// currencies, the injected USD rate table, the per-currency deposit addresses,
// and the calculator that turns a crypto amount into a USD value and a token
// quantity.
//
// Nothing here performs I/O. The calculator is cheap and is meant to be called
// again every time the user edits the currency or the amount.
package presale
