package item

// Find returns the first stack in inv with the given name, or nil.
func Find(inv []Item, name Name) Item {
	for _, it := range inv {
		if it != nil && it.Name() == name {
			return it
		}
	}
	return nil
}

// Contains reports whether it is present in inv by identity.
func Contains(inv []Item, it Item) bool {
	for _, held := range inv {
		if held == it {
			return true
		}
	}
	return false
}

// Stack adds it to inv. When a stack of the same name and kind is already
// held, its count absorbs it.Count(); otherwise it is appended.
//
// Postcondition: inv holds exactly one stack named it.Name() of kind it.Kind()
// if it held at most one before.
func Stack(inv []Item, it Item) []Item {
	for _, held := range inv {
		if held != nil && held != it && held.Name() == it.Name() && held.Kind() == it.Kind() {
			held.Add(it.Count())
			return inv
		}
	}
	if Contains(inv, it) {
		return inv
	}
	return append(inv, it)
}

// Total returns the summed count of every stack named name.
func Total(inv []Item, name Name) int {
	total := 0
	for _, it := range inv {
		if it != nil && it.Name() == name {
			total += it.Count()
		}
	}
	return total
}
