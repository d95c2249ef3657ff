package life

// SurveyResult summarises a headless run.
type SurveyResult struct {
	Config Config
	Steps  int

	// Population holds the live count before the first step and after each
	// step that ran.
	Population     []int
	Peak           int
	PeakGeneration int
	// ExtinctAt is the generation at which no live cell remained, or -1.
	ExtinctAt int

	FinalAlive  int
	MeanAge     float64
	TotalBirths int
	TotalDeaths int
}

// Survey runs cfg for up to steps generations and records the population.
// A run stops early once every cell is dead, since no birth can follow.
func Survey(cfg Config, steps int) (SurveyResult, error) {
	l, err := New(cfg, nil)
	if err != nil {
		return SurveyResult{}, err
	}
	res := SurveyResult{Config: cfg, ExtinctAt: -1}
	record := func() int {
		alive := l.CountAlive()
		res.Population = append(res.Population, alive)
		if alive > res.Peak {
			res.Peak = alive
			res.PeakGeneration = l.Generation()
		}
		return alive
	}

	if record() == 0 {
		res.ExtinctAt = 0
	}
	for res.ExtinctAt < 0 && l.Generation() < steps {
		l.Step()
		if record() == 0 {
			res.ExtinctAt = l.Generation()
		}
	}

	s := l.Stats()
	res.Steps = s.Generation
	res.FinalAlive = s.Alive
	res.MeanAge = s.MeanAge
	res.TotalBirths = s.TotalBirths
	res.TotalDeaths = s.TotalDeaths
	return res, nil
}
