/*
Package multisend implements batched value distribution.

A sender moves funds to many recipients in a single atomic operation while a
percentage fee is collected into a bank account. The fee rate, the
administrator and the bank account are kept in a configuration record owned
by an identity. Batches are always charged according to the record of the
well known owner, which is set in the genesis file.

Funds are moved through the Ledger interface, so any wallet implementation
can be used.
*/
package multisend
