package student

// Table maps the labels of one categorical field to the ordinal codes the
// classifier was fitted with. Option order is the code order.
type Table struct {
	field   string
	options []string
	codes   map[string]int
}

func newTable(field string, options ...string) Table {
	codes := make(map[string]int, len(options))
	for i, opt := range options {
		codes[opt] = i
	}
	return Table{field: field, options: options, codes: codes}
}

// Field returns the column name of the table.
func (t Table) Field() string {
	return t.field
}

// Options returns the labels in code order.
func (t Table) Options() []string {
	out := make([]string, len(t.options))
	copy(out, t.options)
	return out
}

// Code returns the ordinal code for value, or *UnknownCategoryError.
func (t Table) Code(value string) (int, error) {
	code, ok := t.codes[value]
	if !ok {
		return 0, &UnknownCategoryError{Field: t.field, Value: value}
	}
	return code, nil
}

// Contains reports whether value is one of the table's labels.
func (t Table) Contains(value string) bool {
	_, ok := t.codes[value]
	return ok
}

// Lookup tables, fixed at training time.
var (
	Gender = newTable("gender",
		"female", "male")

	RaceEthnicity = newTable("race/ethnicity",
		"group A", "group B", "group C", "group D", "group E")

	ParentalEducation = newTable("parental level of education",
		"some high school",
		"high school",
		"some college",
		"associate's degree",
		"bachelor's degree",
		"master's degree",
	)

	Lunch = newTable("lunch",
		"standard", "free/reduced")

	TestPrep = newTable("test preparation course",
		"none", "completed")
)

// Tables returns the five categorical tables in feature-column order.
func Tables() []Table {
	return []Table{Gender, RaceEthnicity, ParentalEducation, Lunch, TestPrep}
}

// Encoded holds the ordinal codes of a Record's categorical fields.
type Encoded struct {
	Gender            int
	RaceEthnicity     int
	ParentalEducation int
	Lunch             int
	TestPrep          int
}

// Encode maps each categorical field of r through its table. It fails on
// the first value that is not in its table and never substitutes a default.
func Encode(r Record) (Encoded, error) {
	var (
		enc Encoded
		err error
	)
	if enc.Gender, err = Gender.Code(r.Gender); err != nil {
		return Encoded{}, err
	}
	if enc.RaceEthnicity, err = RaceEthnicity.Code(r.RaceEthnicity); err != nil {
		return Encoded{}, err
	}
	if enc.ParentalEducation, err = ParentalEducation.Code(r.ParentalEducation); err != nil {
		return Encoded{}, err
	}
	if enc.Lunch, err = Lunch.Code(r.Lunch); err != nil {
		return Encoded{}, err
	}
	if enc.TestPrep, err = TestPrep.Code(r.TestPrep); err != nil {
		return Encoded{}, err
	}
	return enc, nil
}
