/*
Package gconf provides a toolset for managing an extension configuration.

Each extension stores a single configuration entity under a well known key
derived from the package name. Configuration is set from the genesis file
using InitConfig and read with Load.
*/
package gconf
