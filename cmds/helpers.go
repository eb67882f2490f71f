package cmds

// Var defines name to set the value and name+"." to reset it.
func Var[T any](name string, desc ...string) *T {
	var value T
	Define(name, describe(Func(func(v T) {
		value = v
	}), desc))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("reset "+name))
	return &value
}

// Switch defines name to turn the value on and "!"+name to turn it off.
func Switch(name string, desc ...string) *bool {
	var value bool
	Define(name, describe(Func(func() {
		value = true
	}), desc))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))
	return &value
}

// Collect appends every occurrence of name.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, describe(Func(func(v T) {
		value = append(value, v)
	}), desc))
	return &value
}

func describe(command *Command, desc []string) *Command {
	if len(desc) > 0 {
		command.Desc(desc[0])
	}
	return command
}
