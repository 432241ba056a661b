// The type of the termios flag fields is different on different platforms.
// This file is for those where the fields are uint64.

package eunix

func setFlag(flag *uint64, mask uint64, v bool) {
	if v {
		*flag |= mask
	} else {
		*flag &= ^mask
	}
}
