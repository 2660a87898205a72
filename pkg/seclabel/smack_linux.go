package seclabel

import "golang.org/x/sys/unix"

var smackMountPoint = smackfsPath

func smackEnabled() bool {
	var st unix.Statfs_t
	if err := unix.Statfs(smackMountPoint, &st); err != nil {
		return false
	}
	return st.Type == unix.SMACK_MAGIC
}
