/*
Package cash implements a basic wallet ledger.

Every address owns a wallet holding a set of coins. The Controller moves
value between wallets and is the ledger consumed by other extensions, such
as multisend. Only tokens registered in the currency extension can be moved.
*/
package cash
