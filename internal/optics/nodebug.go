//go:build !debug
// +build !debug

package optics

func DebugLog(string, ...interface{})     {}
func DebugLogOnce(string, ...interface{}) {}
