// Package domain contains the core business values and errors of the
// application. The calendar arithmetic itself lives in the lunisolar
// subpackage, independent of any delivery mechanism.
package domain
