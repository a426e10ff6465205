package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

// unitMarshaler renders a unit as a structured log object.
type unitMarshaler struct{ u *unit.Unit }

func (m unitMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", m.u.Name)
	enc.AddInt("hp", m.u.HP())
	enc.AddInt("max_hp", m.u.MaxHP())
	enc.AddBool("player", m.u.IsPlayer())
	if m.u.InDefenceStance() {
		enc.AddBool("defending", true)
	}
	return nil
}

// Unit returns a field logging u's name, HP and side. A nil u is skipped.
func Unit(key string, u *unit.Unit) zap.Field {
	if u == nil {
		return zap.Skip()
	}
	return zap.Object(key, unitMarshaler{u: u})
}

// Item returns a field logging it by display name and count. A nil it is skipped.
func Item(key string, it item.Item) zap.Field {
	if it == nil {
		return zap.Skip()
	}
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("name", it.Name().String())
		enc.AddInt("count", it.Count())
		return nil
	}))
}

// Queue returns a field listing unit names in turn order.
func Queue(key string, units []*unit.Unit) zap.Field {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name
	}
	return zap.Strings(key, names)
}
