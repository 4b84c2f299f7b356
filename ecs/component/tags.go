package component

// EntityKind is the behaviour tag every simulated entity carries.
type EntityKind uint8

const (
	KindNone EntityKind = iota
	KindPlayer
	KindEnemy
	KindMeteor
	KindBullet
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindMeteor:
		return "meteor"
	case KindBullet:
		return "bullet"
	default:
		return "none"
	}
}

// ParseEntityKind maps a prefab tag name to its kind.
func ParseEntityKind(s string) (EntityKind, bool) {
	switch s {
	case "player":
		return KindPlayer, true
	case "enemy":
		return KindEnemy, true
	case "meteor":
		return KindMeteor, true
	case "bullet":
		return KindBullet, true
	}
	return KindNone, false
}

type Tag struct {
	Kind EntityKind
}

var TagComponent = NewComponent[Tag]()
