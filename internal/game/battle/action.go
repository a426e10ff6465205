package battle

// Action identifies what the unit at the front of the queue does this turn.
// The zero value (ActionUnknown) is intentionally invalid.
type Action int

const (
	ActionUnknown Action = iota // zero value; intentionally invalid
	ActionAttack
	ActionDefend
	ActionSteal
	ActionUseItem
	// ActionChange swaps the front row; it has no engine effect.
	ActionChange
)

// String returns the human-readable name of the Action.
// Postcondition: returns "attack", "defend", "steal", "item", "change", or "unknown".
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionSteal:
		return "steal"
	case ActionUseItem:
		return "item"
	case ActionChange:
		return "change"
	default:
		return "unknown"
	}
}
