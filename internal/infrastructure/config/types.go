package config

// Settings is the root config for settings.json
type Settings struct {
	Display   DisplayConfig             `json:"display"`
	Dialog    DialogBoxConfig           `json:"dialog"`
	Knight    KnightConfig              `json:"knight"`
	Wolf      WolfConfig                `json:"wolf"`
	Skeletons map[string]SkeletonConfig `json:"skeletons"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// DialogBoxConfig places the dialog box on screen and sets its font metrics
type DialogBoxConfig struct {
	X             int     `json:"x"`
	Y             int     `json:"y"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Padding       int     `json:"padding"`
	GlyphWidth    int     `json:"glyphWidth"`
	GlyphHeight   int     `json:"glyphHeight"`
	BlinkInterval float64 `json:"blinkInterval"` // seconds
}

type Rect struct {
	OffsetX int `json:"offsetX"`
	OffsetY int `json:"offsetY"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

type SpriteConfig struct {
	Width      int                        `json:"width"`
	Height     int                        `json:"height"`
	Animations map[string]AnimationConfig `json:"animations"`
}

type AnimationConfig struct {
	Frames int `json:"frames"`
	FPS    int `json:"fps"`
}

// Animation returns the frame count and fps for name, defaulting to a single still frame
func (s SpriteConfig) Animation(name string) (frames, fps int) {
	a, ok := s.Animations[name]
	if !ok {
		return 1, 0
	}
	return a.Frames, a.FPS
}

type KnightConfig struct {
	Sprite SpriteConfig      `json:"sprite"`
	Hitbox Rect              `json:"hitbox"`
	Stats  KnightStatsConfig `json:"stats"`
}

type KnightStatsConfig struct {
	MaxHealth      int     `json:"maxHealth"`
	MoveSpeed      float64 `json:"moveSpeed"`
	AttackDamage   int     `json:"attackDamage"`
	AttackReach    int     `json:"attackReach"`
	AttackDuration float64 `json:"attackDuration"`
	AttackCooldown float64 `json:"attackCooldown"`
	Iframes        float64 `json:"iframes"`
}

type WolfConfig struct {
	Sprite      SpriteConfig    `json:"sprite"`
	Hitbox      Rect            `json:"hitbox"`
	Stats       WolfStatsConfig `json:"stats"`
	SpawnOffset PositionConfig  `json:"spawnOffset"` // relative to the knight spawn
}

type WolfStatsConfig struct {
	WalkSpeed      float64 `json:"walkSpeed"`
	RunSpeed       float64 `json:"runSpeed"`
	FollowDistance float64 `json:"followDistance"`
	RunDistance    float64 `json:"runDistance"`
	BiteDamage     int     `json:"biteDamage"`
	BiteCooldown   float64 `json:"biteCooldown"`
}

type SkeletonConfig struct {
	Sprite SpriteConfig        `json:"sprite"`
	Hitbox Rect                `json:"hitbox"`
	Stats  SkeletonStatsConfig `json:"stats"`
}

type SkeletonStatsConfig struct {
	MaxHealth      int     `json:"maxHealth"`
	ContactDamage  int     `json:"contactDamage"`
	MoveSpeed      float64 `json:"moveSpeed"`
	DetectRange    float64 `json:"detectRange"`
	AttackCooldown float64 `json:"attackCooldown"`
}
