package sprite

// Catalog IDs. Encoders refer to sprites by these names; the compositor
// treats an unknown name as a fatal configuration error.
const (
	Sun        = "sun"
	Moon       = "moon"
	CloudSmall = "cloud_small"
	CloudLarge = "cloud_large"
	TreeN      = "tree_n"
	TreeE      = "tree_e"
	TreeS      = "tree_s"
	TreeW      = "tree_w"
	RainStreak = "rain_streak"
	Snowflake  = "snowflake"
	House      = "house"
	Smoke      = "smoke"
	Grass      = "grass"
	PressLow   = "pressure_low"
	PressNorm  = "pressure_normal"
	PressHigh  = "pressure_high"
	TickMajor  = "tick_major"
	TickMinor  = "tick_minor"
	TempMin    = "temp_min"
	TempMax    = "temp_max"
	EventHeart = "event_heart"
	EventStar  = "event_star"
	EventGift  = "event_gift"
)

type artwork struct {
	role Role
	rows []string
}

var art = map[string]artwork{
	Sun: {RoleForeground, []string{
		".....#.....",
		"..#..#..#..",
		"...#.#.#...",
		"....###....",
		".#.#####.#.",
		"#..#####..#",
		".#.#####.#.",
		"....###....",
		"...#.#.#...",
		"..#..#..#..",
		".....#.....",
	}},
	Moon: {RoleForeground, []string{
		"..####...",
		".###.....",
		"###......",
		"###......",
		"###......",
		"###......",
		"###......",
		".###.....",
		"..####...",
	}},
	CloudSmall: {RoleForeground, []string{
		"....####....",
		"..########..",
		".##########.",
		"############",
		".##########.",
	}},
	CloudLarge: {RoleForeground, []string{
		".....######.......",
		"...##########.....",
		"..############....",
		".###############..",
		"##################",
		".################.",
	}},
	TreeN: {RoleForeground, []string{
		"...#...",
		"..###..",
		"..###..",
		".#####.",
		"..###..",
		".#####.",
		"#######",
		"...#...",
		"...#...",
		"..###..",
	}},
	TreeE: {RoleForeground, []string{
		"..####.",
		".######",
		"..#####",
		"...####",
		"...#...",
		"..#....",
		"..#....",
		".###...",
	}},
	TreeS: {RoleForeground, []string{
		"..###..",
		".#####.",
		"#######",
		"#######",
		".#####.",
		"..###..",
		"...#...",
		"...#...",
		"..###..",
	}},
	TreeW: {RoleForeground, []string{
		".####..",
		"######.",
		"#####..",
		"####...",
		"...#...",
		"....#..",
		"....#..",
		"...###.",
	}},
	RainStreak: {RoleRain, []string{
		"..#",
		"..#",
		".#.",
		".#.",
		"#..",
	}},
	Snowflake: {RoleSnow, []string{
		"#.#.#",
		".###.",
		"##.##",
		".###.",
		"#.#.#",
	}},
	House: {RoleForeground, []string{
		"...##...........",
		"...##......#....",
		"..........###...",
		".........#####..",
		"........#######.",
		".......#########",
		"......###########",
		".....############",
		"....##############",
		"...######..######",
		"...######..######",
		"...######..######",
		"...###############",
		"...###############",
	}},
	Smoke: {RoleSmoke, []string{
		"..##.",
		".##..",
		"..#..",
		".##..",
		"#....",
		".#...",
	}},
	Grass: {RoleSoil, []string{
		".#.#.",
		"#.#.#",
		"#####",
	}},
	PressLow: {RoleForeground, []string{
		"..#####..",
		".#.....#.",
		"#...#...#",
		"#...#...#",
		"#.#.#.#.#",
		"#..###..#",
		"#...#...#",
		".#.....#.",
		"..#####..",
	}},
	PressNorm: {RoleForeground, []string{
		"..#####..",
		".#.....#.",
		"#.......#",
		"#.......#",
		"#.#####.#",
		"#.......#",
		"#.......#",
		".#.....#.",
		"..#####..",
	}},
	PressHigh: {RoleForeground, []string{
		"..#####..",
		".#.....#.",
		"#...#...#",
		"#..###..#",
		"#.#.#.#.#",
		"#...#...#",
		"#...#...#",
		".#.....#.",
		"..#####..",
	}},
	TickMajor: {RoleForeground, []string{
		".#.",
		".#.",
		".#.",
		".#.",
		"###",
	}},
	TickMinor: {RoleForeground, []string{
		"#",
		"#",
		"#",
	}},
	TempMin: {RoleForeground, []string{
		"..#..",
		"..#..",
		"#####",
		".###.",
		"..#..",
	}},
	TempMax: {RoleForeground, []string{
		"..#..",
		".###.",
		"#####",
		"..#..",
		"..#..",
	}},
	EventHeart: {RoleForeground, []string{
		".##.##.",
		"#######",
		"#######",
		".#####.",
		"..###..",
		"...#...",
	}},
	EventStar: {RoleForeground, []string{
		"...#...",
		"...#...",
		"..###..",
		"#######",
		"..###..",
		"..#.#..",
		".#...#.",
	}},
	EventGift: {RoleForeground, []string{
		"..#.#..",
		"...#...",
		"#######",
		"#######",
		"##.#.##",
		"##.#.##",
		"#######",
	}},
}
