// Package character defines playable character sheets and a library that
// loads them from TOML files on disk.
package character

// BaseInfo carries the character's identity as shown to the player.
type BaseInfo struct {
	DisplayName   string `toml:"display_name"`
	LocalizedName string `toml:"localized_name"`
}

// SkillAttributes contains the RPG-style attribute values that influence
// derived stats, skill scaling, and other gameplay mechanics.
type SkillAttributes struct {
	Vitality     float64 `toml:"vitality"`
	Strength     float64 `toml:"strength"`
	Dexterity    float64 `toml:"dexterity"`
	Constitution float64 `toml:"constitution"`
	Intelligence float64 `toml:"intelligence"`
	Faith        float64 `toml:"faith"`
	Luck         float64 `toml:"luck"`
}

// DamageAttributes describes all elemental or magical damage types the
// character can deal, including raw damage and weapon damage scaling ("wds")
// modifiers for each type.
type DamageAttributes struct {
	FireDamage      float64 `toml:"fire_damage"`
	FireWDS         float64 `toml:"fire_wds"`
	LightningDamage float64 `toml:"lightning_damage"`
	LightningWDS    float64 `toml:"lightning_wds"`
	WaterDamage     float64 `toml:"water_damage"`
	WaterWDS        float64 `toml:"water_wds"`
	IceDamage       float64 `toml:"ice_damage"`
	IceWDS          float64 `toml:"ice_wds"`
	NatureDamage    float64 `toml:"nature_damage"`
	NatureWDS       float64 `toml:"nature_wds"`
	PhysicalDamage  float64 `toml:"physical_damage"`
	PhysicalWDS     float64 `toml:"physical_wds"`
	DemonicDamage   float64 `toml:"demonic_damage"`
	DemonicWDS      float64 `toml:"demonic_wds"`
	HolyDamage      float64 `toml:"holy_damage"`
	HolyWDS         float64 `toml:"holy_wds"`
}

// BaseAttributes represents the character's stats before any modifications,
// used as the baseline when (re)computing current stats.
type BaseAttributes struct {
	HP            float64 `toml:"hp"`
	AbilityPoints float64 `toml:"ability_points"`
	SuperArmor    float64 `toml:"super_armor"`
	Attack        float64 `toml:"attack"`
	Defense       float64 `toml:"defense"`
	Speed         float64 `toml:"speed"`
	CritRate      float64 `toml:"crit_rate"`
	CritDamage    float64 `toml:"crit_damage"`
}

// CurrentStats contains the character's live in-game stats, which may change
// during gameplay.
type CurrentStats struct {
	HP            float64 `toml:"hp"`
	AbilityPoints float64 `toml:"ability_points"`
	SuperArmor    float64 `toml:"super_armor"`
	Attack        float64 `toml:"attack"`
	Defense       float64 `toml:"defense"`
	Speed         float64 `toml:"speed"`
	CritRate      float64 `toml:"crit_rate"`
	CritDamage    float64 `toml:"crit_damage"`
}

// WorldStats contains world-facing stats that are not directly part of the
// combat stat block.
type WorldStats struct {
	AttackRange float64 `toml:"attack_range"`
}

// Character is a full character sheet as loaded from a TOML file.
// It is data only; placement in the world is handled by scene entities.
type Character struct {
	BaseInfo         BaseInfo         `toml:"base_info"`
	SkillAttributes  SkillAttributes  `toml:"skill_attributes"`
	DamageAttributes DamageAttributes `toml:"damage_attributes"`
	BaseAttributes   BaseAttributes   `toml:"base_attributes"`
	CurrentStats     CurrentStats     `toml:"current_stats"`
	WorldStats       WorldStats       `toml:"world_stats"`
}

// ResetStats copies the base attributes into the current stats, discarding
// any in-game modifications.
func (c *Character) ResetStats() {
	c.CurrentStats = CurrentStats{
		HP:            c.BaseAttributes.HP,
		AbilityPoints: c.BaseAttributes.AbilityPoints,
		SuperArmor:    c.BaseAttributes.SuperArmor,
		Attack:        c.BaseAttributes.Attack,
		Defense:       c.BaseAttributes.Defense,
		Speed:         c.BaseAttributes.Speed,
		CritRate:      c.BaseAttributes.CritRate,
		CritDamage:    c.BaseAttributes.CritDamage,
	}
}
