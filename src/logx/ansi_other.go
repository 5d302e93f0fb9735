//go:build !windows

package logx

import "os"

// terminals outside windows understand ANSI already
func enableANSI(*os.File) {}
