// Package utils provides small platform helpers shared by commands.
package utils
