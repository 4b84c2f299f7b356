package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate.
	TPS = 60
)

const (
	PlayerMaxHealth = 100
	EnemyMaxHealth  = 20

	BulletDamage       = 10
	EnemyContactDamage = 10
	MeteorDamage       = 10

	EnemyKillScore = 10
)
