package student

// Score bounds accepted by the form sliders.
const (
	MinScore     = 0
	MaxScore     = 100
	DefaultScore = 70
)

// Record is one form submission: five categorical selections and three
// exam scores. Category values are the exact labels shown on the form.
type Record struct {
	Gender            string `json:"gender"`
	RaceEthnicity     string `json:"race_ethnicity"`
	ParentalEducation string `json:"parental_education"`
	Lunch             string `json:"lunch"`
	TestPrep          string `json:"test_prep"`

	Math    int `json:"math_score"`
	Reading int `json:"reading_score"`
	Writing int `json:"writing_score"`
}

// DefaultRecord returns the initial form state: the first option of every
// field and the default slider value for every score.
func DefaultRecord() Record {
	return Record{
		Gender:            Gender.Options()[0],
		RaceEthnicity:     RaceEthnicity.Options()[0],
		ParentalEducation: ParentalEducation.Options()[0],
		Lunch:             Lunch.Options()[0],
		TestPrep:          TestPrep.Options()[0],
		Math:              DefaultScore,
		Reading:           DefaultScore,
		Writing:           DefaultScore,
	}
}

// Validate checks every categorical field against its table and every
// score against [MinScore, MaxScore]. The first violation is returned.
func (r Record) Validate() error {
	if _, err := Encode(r); err != nil {
		return err
	}
	return r.validateScores()
}

func (r Record) validateScores() error {
	scores := []struct {
		field string
		value int
	}{
		{"math score", r.Math},
		{"reading score", r.Reading},
		{"writing score", r.Writing},
	}
	for _, s := range scores {
		if s.value < MinScore || s.value > MaxScore {
			return &ScoreRangeError{Field: s.field, Value: s.value}
		}
	}
	return nil
}
