package life

// Stats summarises the current generation.
type Stats struct {
	Generation int
	Alive      int
	Dead       int

	// Births and Deaths count transitions in the most recent step.
	Births      int
	Deaths      int
	TotalBirths int
	TotalDeaths int

	MeanAge float64
	MaxAge  int
	// ByType counts live cells per display category; nil without typing.
	ByType []int
}

// CountAlive returns the number of live cells.
func (l *Life) CountAlive() int {
	n := 0
	for _, c := range l.cur.Cells() {
		if c.Alive {
			n++
		}
	}
	return n
}

// CountDead returns the number of dead cells.
func (l *Life) CountDead() int {
	return l.cur.Len() - l.CountAlive()
}

// Stats scans the current generation. It never mutates the grid.
func (l *Life) Stats() Stats {
	s := Stats{
		Generation:  l.generation,
		Births:      l.births,
		Deaths:      l.deaths,
		TotalBirths: l.totalBirths,
		TotalDeaths: l.totalDeaths,
	}
	if l.cfg.TypeCount > 0 {
		s.ByType = make([]int, l.cfg.TypeCount)
	}
	ageSum := 0
	for _, c := range l.cur.Cells() {
		if !c.Alive {
			s.Dead++
			continue
		}
		s.Alive++
		ageSum += c.Age
		if c.Age > s.MaxAge {
			s.MaxAge = c.Age
		}
		if s.ByType != nil && c.Type < len(s.ByType) {
			s.ByType[c.Type]++
		}
	}
	if s.Alive > 0 {
		s.MeanAge = float64(ageSum) / float64(s.Alive)
	}
	return s
}
