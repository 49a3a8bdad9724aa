package adapter

import "errors"

var (
	// ErrVaultUnlock is returned when `bw unlock` exits unsuccessfully,
	// typically because the master password was rejected by the vault
	// program itself.
	ErrVaultUnlock = errors.New("vault unlock failed")
	// ErrVaultExport is returned when `bw export` exits unsuccessfully or
	// produces no output.
	ErrVaultExport = errors.New("vault export failed")
)
