/*
Package utils contains decorators that are useful for every application:
panic recovery, logging of every processed transaction and savepoints
that roll back the state changes of a failed transaction.
*/
package utils
