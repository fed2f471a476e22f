package cmds

// Var defines name to set the returned value, and name+"." to reset it.
func Var[T any](name string, desc ...string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(first(desc)))
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))
	return &value
}

// Switch defines name to set the returned flag, and "!"+name to clear it.
func Switch(name string, desc ...string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(first(desc)))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("disable "+name))
	return &value
}

func first(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	return strs[0]
}
