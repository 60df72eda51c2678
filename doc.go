/*
Package batchpay defines interfaces used throughout the application, such as:
storage, transactions, handlers etc. It also contains helpers to work with
addresses, context and abci.

Extensions are implemented in the x/ directory. The batch transfer engine
lives in x/multisend, the reference ledger it moves funds with in x/cash.
*/
package batchpay
