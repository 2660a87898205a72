// Package fsutil provides permission constants, process umask handling and
// file name quoting used when creating directories.
package fsutil

// Permission bits of a Unix file mode. These follow standard Unix permission
// conventions and are kept as raw mode_t values, since they are combined with
// umask values and handed straight to the kernel.
const (
	OwnerRead    uint32 = 0o400
	OwnerWrite   uint32 = 0o200
	OwnerExecute uint32 = 0o100
	GroupRead    uint32 = 0o040
	GroupWrite   uint32 = 0o020
	GroupExecute uint32 = 0o010
	OtherRead    uint32 = 0o004
	OtherWrite   uint32 = 0o002
	OtherExecute uint32 = 0o001

	SetUID uint32 = 0o4000
	SetGID uint32 = 0o2000
	Sticky uint32 = 0o1000

	// Class masks.
	OwnerAll uint32 = OwnerRead | OwnerWrite | OwnerExecute // rwx------
	GroupAll uint32 = GroupRead | GroupWrite | GroupExecute // ---rwx---
	OtherAll uint32 = OtherRead | OtherWrite | OtherExecute // ------rwx

	AllRead    uint32 = OwnerRead | GroupRead | OtherRead          // r--r--r--
	AllWrite   uint32 = OwnerWrite | GroupWrite | OtherWrite       // -w--w--w-
	AllExecute uint32 = OwnerExecute | GroupExecute | OtherExecute // --x--x--x

	// PermBits is rwx for every class.
	PermBits uint32 = OwnerAll | GroupAll | OtherAll // 0777

	// ChmodModeBits are all bits chmod can change.
	ChmodModeBits uint32 = SetUID | SetGID | Sticky | PermBits // 07777

	// DirModeAll is the mode requested for directories whose final
	// permissions are left to the umask.
	DirModeAll = PermBits
)
