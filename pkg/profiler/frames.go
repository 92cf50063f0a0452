package profiler

import (
	"reflect"
	"runtime"
	"strings"
)

// selfPrefix matches symbols of this package so its own frames never become keys.
var selfPrefix = reflect.TypeOf(Summary{}).PkgPath() + "."

var closurePrefixes = []string{"func", "gowrap", "deferwrap"}

// deriveKey walks the stack from the innermost frame outward and returns
// "Type.Method" for the first frame whose declaring type is a suspect.
func deriveKey(suspects map[string]struct{}) string {
	pcs := make([]uintptr, 32)
	for {
		n := runtime.Callers(1, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, 2*len(pcs))
	}

	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, selfPrefix) {
			typeName, method := splitFuncName(frame.Function)
			if _, ok := suspects[typeName]; ok {
				return typeName + "." + method
			}
		}
		if !more {
			return UnknownKey
		}
	}
}

// splitFuncName breaks a runtime symbol such as "example.com/pkg.(*T).M.func1"
// into its declaring type and method. Plain functions are declared by their
// package. Closures belong to the function that encloses them.
func splitFuncName(symbol string) (typeName, method string) {
	name := symbol
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	pkg, rest, found := strings.Cut(name, ".")
	if !found {
		return "", name
	}
	// The linker escapes dots in the last import path element.
	pkg = strings.ReplaceAll(pkg, "%2e", ".")
	rest = strings.ReplaceAll(rest, "[...]", "")

	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return pkg, rest
		}
		typeName = strings.TrimPrefix(rest[1:end], "*")
		method, _, _ = strings.Cut(strings.TrimPrefix(rest[end+1:], "."), ".")
		return typeName, strings.TrimSuffix(method, "-fm")
	}

	pieces := strings.Split(rest, ".")
	if len(pieces) > 1 && !isClosurePiece(pieces[1]) {
		return pieces[0], strings.TrimSuffix(pieces[1], "-fm")
	}
	return pkg, pieces[0]
}

// isClosurePiece reports whether p is a compiler-generated suffix like
// "func2", "1" or "gowrap1".
func isClosurePiece(p string) bool {
	for _, prefix := range closurePrefixes {
		if strings.HasPrefix(p, prefix) {
			p = p[len(prefix):]
			break
		}
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
