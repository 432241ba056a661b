//go:build unix

// Copyright 2015 go-termios Author. All Rights Reserved.
// https://github.com/go-termios/termios
// Author: John Lenton <chipaca@github.com>

package eunix

import "golang.org/x/sys/unix"

// Termios represents terminal attributes.
type Termios unix.Termios

// TermiosForFd returns a pointer to a Termios structure if the file
// descriptor is open on a terminal device.
func TermiosForFd(fd int) (*Termios, error) {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	return (*Termios)(term), err
}

// ApplyToFd applies term to the given file descriptor.
func (term *Termios) ApplyToFd(fd int) error {
	return unix.IoctlSetTermios(fd, setAttrNowIOCTL, (*unix.Termios)(term))
}

// Copy returns a copy of term.
func (term *Termios) Copy() *Termios {
	v := *term
	return &v
}

// SetVTime sets the timeout in deciseconds for noncanonical read.
func (term *Termios) SetVTime(v uint8) {
	term.Cc[unix.VTIME] = v
}

// SetVMin sets the minimal number of characters for noncanonical read.
func (term *Termios) SetVMin(v uint8) {
	term.Cc[unix.VMIN] = v
}

// SetICanon sets the canonical flag.
func (term *Termios) SetICanon(v bool) {
	setFlag(&term.Lflag, unix.ICANON, v)
}

// SetEcho sets the echo flag.
func (term *Termios) SetEcho(v bool) {
	setFlag(&term.Lflag, unix.ECHO, v)
}

// SetRaw configures term for raw operation: no echo, no canonical mode, no
// signal-generating or extended input keys, no input or output processing,
// 8-bit characters, and single-byte reads with no timing delay.
func (term *Termios) SetRaw() {
	setFlag(&term.Iflag, unix.IGNBRK|unix.BRKINT|unix.PARMRK|unix.ISTRIP|
		unix.INLCR|unix.IGNCR|unix.ICRNL|unix.IXON, false)
	setFlag(&term.Oflag, unix.OPOST, false)
	setFlag(&term.Lflag, unix.ECHO|unix.ECHONL|unix.ICANON|unix.ISIG|
		unix.IEXTEN, false)
	setFlag(&term.Cflag, unix.CSIZE|unix.PARENB, false)
	setFlag(&term.Cflag, unix.CS8, true)
	term.SetVMin(1)
	term.SetVTime(0)
}
