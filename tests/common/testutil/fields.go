//go:build unit || e2e

package testutil

// Field returns a mutation that sets key to value, or removes the key
// when value is nil. Used to vary one request field per test case.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
