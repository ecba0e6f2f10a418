package ski

import "math"

// Layout
const (
	ViewWidth    = 480.0 // Slope width in world units
	ViewHeight   = 800.0 // Visible slope length in world units
	PlayerRow    = 0.25  // Player's fixed screen row as a fraction of ViewHeight
	PlayerWidth  = 28.0
	PlayerHeight = 36.0
	HitboxShrink = 0.7  // Collision box vs display size
	SlopeMargin  = 16.0 // Closest the player may get to either slope edge
)

// Physics
const (
	FrictionNormal         = 0.15 // Per second, times speed
	FrictionIce            = 0.03
	FrictionSnowdriftExtra = 0.25
	WingDragTuck           = 0.0  // Per second, times speed
	WingDragNeutral        = 0.02
	WingDragSpread         = 0.15
	ScoreRate              = 0.02 // Score per world unit traveled downhill
	MaxStep                = 0.1  // Longest dt a single tick may integrate
)

// Steering
const (
	TurnAccel         = 6.0 // rad/s²
	MaxTurnSpeed      = 2.5 // rad/s
	TurnDrag          = 6.0 // 1/s decay of heading velocity without input
	CenterRate        = 1.5 // 1/s decay of heading without input
	MaxAngle          = 1.0 // rad
	LateralFactor     = 1.0
	CounterSteerBoost = 2.0

	IceTurnAccel = 0.08
	IceTurnSpeed = 0.15
	IceDrag      = 0.2
	IceCenter    = 0.2
)

// Airborne
const (
	AirArcHeight      = 80.0
	AirBaseDuration   = 1.2
	AirSpeedFactor    = 0.002 // Extra air time per speed unit above AirSpeedPivot
	AirSpeedPivot     = 200.0
	AirIcyMultiplier  = 1.5
	AirDriftFactor    = 0.5
	AirScaleGrowth    = 0.3 // Sprite grows by this fraction at the top of the arc
	MogulAirDuration  = 0.5
	TrickRotationTime = 0.8 // Seconds for a full 2π rotation
	SpinRotationTime  = 0.6 // Seconds for a full free-spin rotation

	TrickRotationRate = 2 * math.Pi / TrickRotationTime
	SpinRotationRate  = 2 * math.Pi / SpinRotationTime
)

// Landing
const (
	LandingCleanThreshold  = 0.5
	LandingSloppyThreshold = 1.2
	CrashLockDuration      = 0.5
	BounceDuration         = 0.3
	BounceHeight           = 12.0
)

// Scoring
const (
	FishPoints     = 20
	IcePoints      = 25
	FlyoverPoints  = 50
	VarietyBonus   = 50
	SpinHalfPoints = 100
	IceSpeedBoost  = 0.1
)

// Collisions and status effects
const (
	StartingLives       = 3
	RockDecel           = 200.0 // Speed lost on impact
	TreeGrazeDecel      = 30.0
	TreeCenterDecel     = 270.0 // Added to graze for a dead-center hit
	TreeContactDrag     = 60.0  // Speed lost per second while overlapping a hit tree
	SlipperyDuration    = 2.5
	SnowdriftDuration   = 1.2
	FlingDuration       = 0.6
	FlingDistance       = 90.0
	InvincibleDuration  = 2.0
	InvincibleFlashRate = 10.0 // Visibility toggles per second while invincible
)

// Spawning
const (
	SpawnAhead       = 30.0 // Obstacles appear this far below the visible slope
	RampSpawnAhead   = 40.0
	SpawnMargin      = 30.0
	RampSpawnMargin  = 60.0
	SpawnMinDistance = 50.0
	SpawnAttempts    = 5
	CullLine         = -50.0
	FishClusterOdds  = 0.25
	FishClusterGapX  = 22.0
	FishClusterGapY  = 12.0
)
