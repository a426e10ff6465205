package unit

// Warrior returns a level 1 warrior: sturdy and slow.
func Warrior(name string, isPlayer bool) *Unit {
	b := NewBuilder().WithName(name).WithHP(35).WithStr(10).WithAgl(8)
	if isPlayer {
		b.AsPlayer()
	}
	return b.MustBuild()
}

// Thief returns a level 1 thief: frail and quick.
func Thief(name string, isPlayer bool) *Unit {
	b := NewBuilder().WithName(name).WithHP(30).WithStr(5).WithAgl(15)
	if isPlayer {
		b.AsPlayer()
	}
	return b.MustBuild()
}
