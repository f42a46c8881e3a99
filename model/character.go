package model

// Stat names the six character attributes.
type Stat string

const (
	StatStrength     Stat = "strength"
	StatDexterity    Stat = "dexterity"
	StatConstitution Stat = "constitution"
	StatIntelligence Stat = "intelligence"
	StatWisdom       Stat = "wisdom"
	StatCharisma     Stat = "charisma"
)

// Valid reports whether s names one of the six attributes.
func (s Stat) Valid() bool {
	switch s {
	case StatStrength, StatDexterity, StatConstitution,
		StatIntelligence, StatWisdom, StatCharisma:
		return true
	}
	return false
}

// AllStats lists the stats in their canonical order.
var AllStats = []Stat{
	StatStrength, StatDexterity, StatConstitution,
	StatIntelligence, StatWisdom, StatCharisma,
}

// CharacterStats is the fixed six-attribute block.
type CharacterStats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the value of the named stat (0 for an unknown name).
func (s CharacterStats) Get(stat Stat) int {
	switch stat {
	case StatStrength:
		return s.Strength
	case StatDexterity:
		return s.Dexterity
	case StatConstitution:
		return s.Constitution
	case StatIntelligence:
		return s.Intelligence
	case StatWisdom:
		return s.Wisdom
	case StatCharisma:
		return s.Charisma
	}
	return 0
}

// Add adds delta to the named stat in place. Unknown names are ignored.
func (s *CharacterStats) Add(stat Stat, delta int) {
	switch stat {
	case StatStrength:
		s.Strength += delta
	case StatDexterity:
		s.Dexterity += delta
	case StatConstitution:
		s.Constitution += delta
	case StatIntelligence:
		s.Intelligence += delta
	case StatWisdom:
		s.Wisdom += delta
	case StatCharisma:
		s.Charisma += delta
	}
}

// Resource is a current/max pair (health or mana).
// Current stays within [0, Max]; call Clamp after any mutation.
type Resource struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Clamp forces Current into [0, Max].
func (r *Resource) Clamp() {
	if r.Current > r.Max {
		r.Current = r.Max
	}
	if r.Current < 0 {
		r.Current = 0
	}
}

// Character is the aggregate root. It is a plain JSON-serializable value:
// engine operations take a Character and return the transformed copy, and
// persisting the result is the caller's responsibility.
type Character struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Race                  string         `json:"race"`
	Class                 string         `json:"class"`
	Level                 int            `json:"level"`
	Experience            int            `json:"experience"`
	ExperienceToNextLevel int            `json:"experienceToNextLevel"`
	Health                Resource       `json:"health"`
	Mana                  Resource       `json:"mana"`
	Stats                 CharacterStats `json:"stats"`
	BattleTokens          int            `json:"battleTokens"`
	Habits                []Habit        `json:"habits"`
	Dailies               []Daily        `json:"dailies"`
	Todos                 []Todo         `json:"todos"`
}

// Starting values for a fresh character. Stats come from the quiz;
// everything else is fixed at creation.
const (
	StartingXPThreshold = 100
	StartingHealth      = 50
	StartingMana        = 30
)

// NewCharacter builds a level-1 character with the given quiz-derived stats.
func NewCharacter(id, name, race, class string, stats CharacterStats) Character {
	return Character{
		ID:                    id,
		Name:                  name,
		Race:                  race,
		Class:                 class,
		Level:                 1,
		ExperienceToNextLevel: StartingXPThreshold,
		Health:                Resource{Current: StartingHealth, Max: StartingHealth},
		Mana:                  Resource{Current: StartingMana, Max: StartingMana},
		Stats:                 stats,
		Habits:                []Habit{},
		Dailies:               []Daily{},
		Todos:                 []Todo{},
	}
}

// Clone returns a deep copy. Engine operations clone before mutating so the
// caller's value is never touched on a no-op path.
func (c Character) Clone() Character {
	out := c
	out.Habits = make([]Habit, len(c.Habits))
	for i, h := range c.Habits {
		out.Habits[i] = h
		out.Habits[i].History = cloneHistory(h.History)
	}
	out.Dailies = make([]Daily, len(c.Dailies))
	for i, d := range c.Dailies {
		out.Dailies[i] = d
		out.Dailies[i].History = cloneHistory(d.History)
	}
	out.Todos = make([]Todo, len(c.Todos))
	for i, td := range c.Todos {
		out.Todos[i] = td
		out.Todos[i].History = cloneHistory(td.History)
		if td.Checklist != nil {
			out.Todos[i].Checklist = append([]ChecklistItem(nil), td.Checklist...)
		}
	}
	return out
}

func cloneHistory(h []HistoryEntry) []HistoryEntry {
	if h == nil {
		return nil
	}
	return append([]HistoryEntry(nil), h...)
}
