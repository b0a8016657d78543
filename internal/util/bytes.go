package util

// ZeroBytes overwrites the slice with zeros in place. Use it (typically via
// defer) on every buffer that held seed or key material before the buffer
// goes out of scope.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
