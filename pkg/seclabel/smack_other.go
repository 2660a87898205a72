//go:build !linux

package seclabel

func smackEnabled() bool { return false }
