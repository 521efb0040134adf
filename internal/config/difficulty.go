package config

// DifficultyManager holds the difficulty table and the selected row.
// Selecting a row swaps both parameters together; callers read them
// through Current on every tick.
type DifficultyManager struct {
	levels  []DifficultyLevel
	current int
}

// NewDifficultyManager creates a manager positioned on cfg.Default,
// or on the first row when the default is missing.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{
		levels: append([]DifficultyLevel(nil), cfg.Levels...),
	}
	if len(d.levels) == 0 {
		d.levels = DefaultFlappyConfig().Difficulty.Levels
	}
	d.Select(Difficulty(cfg.Default))
	return d
}

// Current returns a copy of the selected row.
func (d *DifficultyManager) Current() DifficultyLevel {
	return d.levels[d.current]
}

// Selected returns the name of the selected row.
func (d *DifficultyManager) Selected() Difficulty {
	return Difficulty(d.levels[d.current].Name)
}

// Select switches to the named row. Unknown names are ignored and
// reported by returning false.
func (d *DifficultyManager) Select(name Difficulty) bool {
	for i, l := range d.levels {
		if Difficulty(l.Name) == name {
			d.current = i
			return true
		}
	}
	return false
}

// Next cycles to the following row and returns it.
func (d *DifficultyManager) Next() DifficultyLevel {
	d.current = (d.current + 1) % len(d.levels)
	return d.Current()
}

// Names lists the table rows in order.
func (d *DifficultyManager) Names() []Difficulty {
	names := make([]Difficulty, len(d.levels))
	for i, l := range d.levels {
		names[i] = Difficulty(l.Name)
	}
	return names
}
